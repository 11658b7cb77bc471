// Package inflight serializes schedule imports per event.
//
// Parsing itself is synchronous, but the HTTP layer can receive two
// uploads for the same event at once; interleaved imports would break
// the per-event uniqueness invariants, so the second one is rejected
// while the first is running.
package inflight

import (
	"context"
	"sync"
)

// Tracker records which event identifiers currently have an import in
// flight. Thread-safe.
type Tracker interface {
	// Begin atomically marks id as having an import in flight.
	// Returns false if one is already running for id.
	Begin(ctx context.Context, id string) bool

	// End clears the in-flight mark so a later import may run.
	End(ctx context.Context, id string)

	Size() int
}

type tracker struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewTracker creates an empty in-memory tracker.
func NewTracker() Tracker {
	return &tracker{active: make(map[string]struct{})}
}

func (t *tracker) Begin(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, running := t.active[id]; running {
		return false
	}
	t.active[id] = struct{}{}
	return true
}

func (t *tracker) End(_ context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, id)
}

func (t *tracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}
