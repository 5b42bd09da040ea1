// Package session provides a reference router.Synchronizer. It turns visit and
// reload notifications into loads through a caller-supplied Loader, remembers the
// current visit of each stack, caches page snapshots and reports failures with a
// retry callback.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Visit is one load of a destination onto a stack.
type Visit struct {
	ID          uuid.UUID
	Destination string
	Stack       router.StackKind
	Action      router.LoadAction
	Screen      router.Screen
}

// Loader fetches the content for a visit. Fetching, rendering and bridging to
// native components are the loader's business.
type Loader interface {
	Load(ctx context.Context, v Visit) ([]byte, error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(ctx context.Context, v Visit) ([]byte, error)

func (f LoaderFunc) Load(ctx context.Context, v Visit) ([]byte, error) { return f(ctx, v) }

// FailureHandler is told about a failed load. Calling retry issues the same
// load again.
type FailureHandler func(destination string, on router.StackKind, err error, retry func())

// Stats counts session activity. Safe to read from any goroutine.
type Stats struct {
	Visits       int64
	Reloads      int64
	Loads        int64
	Failures     int64
	Retries      int64
	SnapshotHits int64
}

// Session synchronizes a content-loading backend with the router's stacks.
// Visit, Reload and ClearSnapshotCache must be called from the routing goroutine;
// Stats may be called from anywhere.
type Session struct {
	ctx       context.Context
	loader    Loader
	tops      router.TopSource
	onFailure FailureHandler
	logger    *slog.Logger

	current map[router.StackKind]Visit
	caches  map[router.StackKind]*SnapshotCache

	visits       *atomic.Int64
	reloads      *atomic.Int64
	loads        *atomic.Int64
	failures     *atomic.Int64
	retries      *atomic.Int64
	snapshotHits *atomic.Int64
}

// New creates a session that loads through loader using ctx. A nil ctx means
// context.Background. A nil loader only records visits.
func New(ctx context.Context, loader Loader) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	caches := map[router.StackKind]*SnapshotCache{
		router.StackMain:  NewSnapshotCache(),
		router.StackModal: NewSnapshotCache(),
	}
	return &Session{
		ctx:          ctx,
		loader:       loader,
		logger:       internal.GetInternalLogger().With("component", "session"),
		current:      map[router.StackKind]Visit{},
		caches:       caches,
		visits:       atomic.NewInt64(0),
		reloads:      atomic.NewInt64(0),
		loads:        atomic.NewInt64(0),
		failures:     atomic.NewInt64(0),
		retries:      atomic.NewInt64(0),
		snapshotHits: atomic.NewInt64(0),
	}
}

// Track sets where Reload reads the visible screen of a stack from, normally
// the router.Controller. Without it, Reload repeats the stack's last visit.
func (s *Session) Track(src router.TopSource) *Session {
	s.tops = src
	return s
}

// OnFailure sets the handler for failed loads.
func (s *Session) OnFailure(h FailureHandler) *Session {
	s.onFailure = h
	return s
}

// Visit loads screen onto a stack. Screens without a destination have nothing to load.
func (s *Session) Visit(screen router.Screen, on router.StackKind, action router.LoadAction) {
	visitable, ok := screen.(router.Visitable)
	if !ok {
		s.logger.Debug("Skipping visit of non-visitable screen", "identifier", screen.Identifier(), "stack", on)
		return
	}

	s.visits.Inc()
	s.start(Visit{
		ID:          uuid.New(),
		Destination: visitable.Destination(),
		Stack:       on,
		Action:      action,
		Screen:      screen,
	})
}

// Reload loads the visible screen of a stack again, bypassing its snapshot.
func (s *Session) Reload(on router.StackKind) {
	s.reloads.Inc()

	var screen router.Screen
	if s.tops != nil {
		screen = s.tops.Top(on)
	} else if last, ok := s.current[on]; ok {
		screen = last.Screen
	}

	visitable, ok := screen.(router.Visitable)
	if !ok {
		s.logger.Debug("Nothing to reload", "stack", on)
		return
	}

	s.start(Visit{
		ID:          uuid.New(),
		Destination: visitable.Destination(),
		Stack:       on,
		Action:      router.ActionReplace,
		Screen:      screen,
	})
}

// ClearSnapshotCache drops every cached snapshot of a stack.
func (s *Session) ClearSnapshotCache(on router.StackKind) {
	s.logger.Debug("Clearing snapshot cache", "stack", on)
	s.caches[on].Clear()
}

// Current returns the last visit started on a stack.
func (s *Session) Current(on router.StackKind) (Visit, bool) {
	v, ok := s.current[on]
	return v, ok
}

// Snapshot returns the cached snapshot of destination on a stack.
func (s *Session) Snapshot(on router.StackKind, destination string) (Snapshot, bool) {
	return s.caches[on].Get(destination)
}

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats {
	return Stats{
		Visits:       s.visits.Load(),
		Reloads:      s.reloads.Load(),
		Loads:        s.loads.Load(),
		Failures:     s.failures.Load(),
		Retries:      s.retries.Load(),
		SnapshotHits: s.snapshotHits.Load(),
	}
}

func (s *Session) start(v Visit) {
	s.current[v.Stack] = v

	if v.Action == router.ActionRestore {
		if _, ok := s.caches[v.Stack].Get(v.Destination); ok {
			s.snapshotHits.Inc()
			s.logger.Debug("Restored from snapshot", "destination", v.Destination, "stack", v.Stack)
			return
		}
	}

	if s.loader == nil {
		return
	}
	if err := s.ctx.Err(); err != nil {
		s.logger.Debug("Skipping load, session context done", "destination", v.Destination, "error", err)
		return
	}

	s.loads.Inc()
	content, err := s.loader.Load(s.ctx, v)
	if err != nil {
		s.failures.Inc()
		s.logger.Error("Load failed", "visit", v.ID, "destination", v.Destination, "stack", v.Stack, "error", err)
		if s.onFailure != nil {
			s.onFailure(v.Destination, v.Stack, err, func() { s.retry(v) })
		}
		return
	}

	s.caches[v.Stack].Set(Snapshot{Destination: v.Destination, Content: content})
}

func (s *Session) retry(v Visit) {
	s.retries.Inc()
	v.ID = uuid.New()
	s.start(v)
}
