package source

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"llm-council/councilconf/pkg/parser"
	"llm-council/councilconf/pkg/tree"
)

// Reload triggers, used as log fields and metric labels.
const (
	TriggerInitial = "initial"
	TriggerWatch   = "watch"
	TriggerResync  = "resync"
	TriggerManual  = "manual"
)

// ErrNotLoaded is returned when the store has no snapshot yet.
var ErrNotLoaded = errors.New("configuration not loaded")

// ReloadRecorder receives the outcome of every reload.
// *metrics.Collector satisfies it.
type ReloadRecorder interface {
	RecordReload(trigger string, err error)
}

// Store holds the current snapshot of one configuration file. Readers call
// Current and never block on a reload in progress.
type Store struct {
	path     string
	parser   parser.Parser
	logger   *slog.Logger
	recorder ReloadRecorder

	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

// NewStore creates a store for path. Nothing is read until the first
// Reload. logger and recorder may be nil.
func NewStore(path string, p parser.Parser, logger *slog.Logger, recorder ReloadRecorder) *Store {
	if p == nil {
		p = parser.Native{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:     path,
		parser:   p,
		logger:   logger.With("component", "source.store", "path", path),
		recorder: recorder,
	}
}

// Path returns the file the store loads.
func (s *Store) Path() string {
	return s.path
}

// Current returns the latest good snapshot, or nil before the first
// successful load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload reads and parses the file again. On success the new snapshot
// replaces the current one and is returned. On failure the current
// snapshot is kept and the error is returned.
func (s *Store) Reload(trigger string) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := Load(s.path, s.parser)
	if s.recorder != nil {
		s.recorder.RecordReload(trigger, err)
	}
	if err != nil {
		s.logger.Error("configuration reload failed",
			"trigger", trigger,
			"error", err,
		)
		return nil, err
	}

	prev := s.current.Swap(snap)
	for _, w := range snap.Warnings {
		s.logger.Warn("configuration parsed with warning",
			"line", w.Line,
			"kind", string(w.Kind),
			"message", w.Message,
		)
	}

	attrs := []any{
		"trigger", trigger,
		"snapshot_id", snap.ID,
		"backend", snap.Backend,
		"warnings", len(snap.Warnings),
	}
	if prev != nil {
		attrs = append(attrs, "previous_id", prev.ID, "changed", !tree.Equal(prev.Root, snap.Root))
	}
	s.logger.Info("configuration loaded", attrs...)

	return snap, nil
}

// Section resolves dotpath against the current snapshot.
func (s *Store) Section(dotpath string) (*tree.Value, error) {
	snap := s.Current()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.Section(dotpath)
}
