package source

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "standard.yaml", "mode: quick\n")
	store := NewStore(path, parser.Native{}, nil, nil)
	if _, err := store.Reload(TriggerInitial); err != nil {
		t.Fatalf("initial reload failed: %v", err)
	}

	w, err := NewWatcher(store, &WatcherConfig{Events: true, Debounce: 20 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored.
	writeFile(t, dir, "other.yaml", "mode: deep\n")
	writeFile(t, dir, "standard.yaml", "mode: standard\n")

	waitFor(t, 3*time.Second, func() bool {
		v, err := store.Section("mode")
		return err == nil && tree.Equal(v, tree.String("standard"))
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestWatcher_Resync(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a cron tick")
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "standard.yaml", "a: 1\n")
	rec := &fakeRecorder{}
	store := NewStore(path, parser.Native{}, nil, rec)

	w, err := NewWatcher(store, &WatcherConfig{ResyncSchedule: "@every 1s"}, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	waitFor(t, 5*time.Second, func() bool {
		for _, r := range rec.snapshot() {
			if r.trigger == TriggerResync {
				return true
			}
		}
		return false
	})
	if store.Current() == nil {
		t.Error("expected resync to load a snapshot")
	}
}

func TestNewWatcher_InvalidSchedule(t *testing.T) {
	store := NewStore("standard.yaml", nil, nil, nil)
	if _, err := NewWatcher(store, &WatcherConfig{ResyncSchedule: "not a schedule"}, nil); err == nil {
		t.Error("expected error for invalid schedule")
	}
	if _, err := NewWatcher(store, &WatcherConfig{}, nil); err == nil {
		t.Error("expected error when neither events nor resync are enabled")
	}
	if _, err := NewWatcher(nil, nil, nil); err == nil {
		t.Error("expected error for nil store")
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool { return calls.Load() > 0 })
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}
