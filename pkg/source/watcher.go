package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// WatcherConfig contains configuration for the file watcher.
type WatcherConfig struct {
	// Events enables reloads on file system events.
	Events bool

	// Debounce is the quiet period after the last file event before a
	// reload runs (default: 100ms).
	Debounce time.Duration

	// ResyncSchedule is a standard cron expression that forces a reload
	// independent of file events. Empty disables it.
	ResyncSchedule string
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		Events:   true,
		Debounce: 100 * time.Millisecond,
	}
}

// Watcher reloads a Store when its file changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file over the original keep
// being observed.
type Watcher struct {
	store  *Store
	config *WatcherConfig
	logger *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for store.
func NewWatcher(store *Store, config *WatcherConfig, logger *slog.Logger) (*Watcher, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if config == nil {
		config = DefaultWatcherConfig()
	}
	if !config.Events && config.ResyncSchedule == "" {
		return nil, fmt.Errorf("nothing to watch: file events are disabled and no resync schedule is set")
	}
	if config.ResyncSchedule != "" {
		if _, err := cron.ParseStandard(config.ResyncSchedule); err != nil {
			return nil, fmt.Errorf("invalid cron schedule %q: %w", config.ResyncSchedule, err)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		store:  store,
		config: config,
		logger: logger.With("component", "source.watcher"),
	}, nil
}

// Run watches until ctx is cancelled. It does not perform an initial load;
// call Store.Reload first. Run returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	target, err := filepath.Abs(w.store.Path())
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.store.Path(), err)
	}

	// Nil channels block forever, which leaves only the resync schedule
	// and cancellation when file events are off.
	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if w.config.Events {
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create fsnotify watcher: %w", err)
		}
		defer fsw.Close()

		if err := fsw.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
		}
		events, errs = fsw.Events, fsw.Errors
	}

	debounce := NewDebouncer(w.config.Debounce)
	defer debounce.Stop()

	if w.config.ResyncSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(w.config.ResyncSchedule, func() {
			w.reload(TriggerResync)
		}); err != nil {
			return fmt.Errorf("failed to schedule resync: %w", err)
		}
		scheduler.Start()
		defer func() {
			<-scheduler.Stop().Done()
		}()
	}

	w.logger.Info("file watcher started",
		"path", target,
		"events", w.config.Events,
		"debounce_ms", w.config.Debounce.Milliseconds(),
		"resync_schedule", w.config.ResyncSchedule,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !shouldProcessEvent(event, target) {
				continue
			}

			w.logger.Debug("file event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)
			debounce.Trigger(func() {
				w.reload(TriggerWatch)
			})

		case err, ok := <-errs:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

// reload errors are logged by the store; the previous snapshot stays.
func (w *Watcher) reload(trigger string) {
	_, _ = w.store.Reload(trigger)
}

// shouldProcessEvent reports whether event concerns target and can change
// its contents.
func shouldProcessEvent(event fsnotify.Event, target string) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}
