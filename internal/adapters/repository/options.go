// Package repository defines the event store interface and errors.
package repository

import "github.com/google/uuid"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithIDGenerator sets the identifier generator used at insert time.
// Tests use it to make assigned identifiers deterministic.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *MemStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}
