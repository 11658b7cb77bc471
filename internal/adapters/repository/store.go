// Package repository defines the event store interface and errors.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/arena/internal/domain/model"
)

// Store provides persistence for events and everything a schedule
// import produces. Implementations assign entity identifiers at insert
// time; callers never invent them. All reads return defensive copies
// in insertion order, which for tables is the canonical table order
// established at import.
type Store interface {
	// CreateEvent persists a new event and returns it with its identifier.
	CreateEvent(ctx context.Context, event model.Event) (model.Event, error)
	// Event returns the event with the given identifier.
	// Returns ErrNotFound if the event is unknown.
	Event(ctx context.Context, id uuid.UUID) (model.Event, error)

	// Bulk insertion of primary entities (pass 1 of an import).
	// Uniqueness of team numbers and table/room names within the event
	// is enforced here; a violation returns ErrDuplicate and inserts
	// nothing from the offending batch.
	InsertTeams(ctx context.Context, teams []model.Team) error
	InsertTables(ctx context.Context, tables []model.Table) error
	InsertRooms(ctx context.Context, rooms []model.Room) error

	// Identifier-bearing reads of primary entities.
	Teams(ctx context.Context, eventID uuid.UUID) ([]model.Team, error)
	Tables(ctx context.Context, eventID uuid.UUID) ([]model.Table, error)
	Rooms(ctx context.Context, eventID uuid.UUID) ([]model.Room, error)

	// Bulk insertion of secondary entities (pass 2 of an import).
	InsertMatches(ctx context.Context, matches []model.Match) error
	InsertSessions(ctx context.Context, sessions []model.JudgingSession) error

	// Reads of secondary entities.
	Matches(ctx context.Context, eventID uuid.UUID) ([]model.Match, error)
	Sessions(ctx context.Context, eventID uuid.UUID) ([]model.JudgingSession, error)
}
