package source

import (
	"errors"
	"os"
	"sync"
	"testing"

	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

type recordedReload struct {
	trigger string
	failed  bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	reloads []recordedReload
}

func (r *fakeRecorder) RecordReload(trigger string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads = append(r.reloads, recordedReload{trigger: trigger, failed: err != nil})
}

func (r *fakeRecorder) snapshot() []recordedReload {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedReload, len(r.reloads))
	copy(out, r.reloads)
	return out
}

func TestStore_ReloadKeepsLastGoodSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "standard.yaml", "limits:\n  retries: 3\n")
	rec := &fakeRecorder{}
	store := NewStore(path, parser.Native{}, nil, rec)

	if store.Current() != nil {
		t.Fatal("expected no snapshot before first reload")
	}
	if _, err := store.Section("limits"); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}

	first, err := store.Reload(TriggerInitial)
	if err != nil {
		t.Fatalf("initial reload failed: %v", err)
	}
	if store.Current() != first {
		t.Fatal("expected current snapshot to be the initial one")
	}

	writeFile(t, dir, "standard.yaml", "limits:\n  - 1\n  retries: 4\n")
	if _, err := store.Reload(TriggerManual); err == nil {
		t.Fatal("expected reload of malformed file to fail")
	}
	if store.Current() != first {
		t.Error("failed reload must keep the previous snapshot")
	}

	writeFile(t, dir, "standard.yaml", "limits:\n  retries: 5\n")
	second, err := store.Reload(TriggerWatch)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := store.Section("limits.retries")
	if err != nil {
		t.Fatalf("Section failed: %v", err)
	}
	if !tree.Equal(got, tree.Int(5)) {
		t.Errorf("limits.retries = %v, want 5", got.Interface())
	}
	if second.ID == first.ID {
		t.Error("expected a new snapshot ID")
	}

	want := []recordedReload{
		{trigger: TriggerInitial},
		{trigger: TriggerManual, failed: true},
		{trigger: TriggerWatch},
	}
	reloads := rec.snapshot()
	if len(reloads) != len(want) {
		t.Fatalf("recorded %d reloads, want %d", len(reloads), len(want))
	}
	for i := range want {
		if reloads[i] != want[i] {
			t.Errorf("reload %d = %+v, want %+v", i, reloads[i], want[i])
		}
	}
}

func TestStore_MissingFile(t *testing.T) {
	store := NewStore("/nonexistent/standard.yaml", nil, nil, nil)
	if _, err := store.Reload(TriggerInitial); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
	if store.Current() != nil {
		t.Error("expected no snapshot after failed initial load")
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "standard.yaml", "a: 1\n")
	store := NewStore(path, parser.Native{}, nil, nil)
	if _, err := store.Reload(TriggerInitial); err != nil {
		t.Fatalf("initial reload failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap := store.Current(); snap == nil || snap.Root == nil {
					t.Error("reader observed an empty snapshot")
					return
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		if err := os.WriteFile(path, []byte("a: 2\n"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if _, err := store.Reload(TriggerManual); err != nil {
			t.Fatalf("reload failed: %v", err)
		}
	}
	wg.Wait()
}
