// Package store binds the pure reducer to a host: it owns the committed
// workspace, serializes dispatches, and notifies a change listener that
// typically feeds the persistence bridge. Transitions stay synchronous and
// atomic; the mutex only guards against hosts that dispatch off-thread.
package store

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"prism/internal/workspace"
)

// Store holds the committed workspace and applies actions to it.
type Store struct {
	mu       sync.Mutex
	reducer  workspace.Reducer
	current  *workspace.Workspace
	tracer   oteltrace.Tracer
	onChange func(*workspace.Workspace)
}

// New creates a store over an initial (already validated) workspace.
// maxTabs <= 0 means unlimited.
func New(initial *workspace.Workspace, maxTabs int) *Store {
	return &Store{
		reducer: workspace.Reducer{MaxTabs: maxTabs},
		current: initial,
		tracer:  otel.Tracer("prism/store"),
	}
}

// SetOnChange registers the listener invoked after every committed
// transition with the new workspace.
func (s *Store) SetOnChange(fn func(*workspace.Workspace)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Current returns the committed workspace. Callers must treat it as
// read-only; it is the state drag intents are computed against each frame.
func (s *Store) Current() *workspace.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Snapshot returns a deep clone of the committed workspace.
func (s *Store) Snapshot() *workspace.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// MaxTabs returns the capacity the reducer enforces.
func (s *Store) MaxTabs() int {
	return s.reducer.MaxTabs
}

// AtCapacity reports whether AddTab/DuplicateTab would no-op, so hosts can
// disable the affordances proactively.
func (s *Store) AtCapacity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducer.MaxTabs > 0 && len(s.current.Tabs) >= s.reducer.MaxTabs
}

// Dispatch applies one action. Returns true if the workspace changed; no-op
// actions commit nothing and notify nobody. Each dispatch is recorded as a
// span named after the action.
func (s *Store) Dispatch(ctx context.Context, action workspace.Action) bool {
	if action == nil {
		return false
	}
	s.mu.Lock()
	_, span := s.tracer.Start(ctx, "workspace."+action.Name())
	next := s.reducer.Apply(s.current, action)
	changed := next != s.current
	span.SetAttributes(
		attribute.Bool("prism.changed", changed),
		attribute.Int("prism.tabs", len(next.Tabs)),
		attribute.Int("prism.panels", len(next.Leaves())),
	)
	span.End()
	if changed {
		s.current = next
	}
	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange(next)
	}
	return changed
}

// Replace commits an externally supplied workspace (an accepted inbound
// sync). The caller has validated and cloned it already.
func (s *Store) Replace(w *workspace.Workspace) {
	if w == nil {
		return
	}
	s.mu.Lock()
	s.current = w
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange(w)
	}
}
