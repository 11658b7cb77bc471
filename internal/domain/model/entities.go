// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/okian/arena/internal/domain/types"
)

// Event is the tournament an imported schedule belongs to. Events are
// created before any schedule is imported; every other entity carries
// the owning event's identifier.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Affiliation is the institution a team represents.
type Affiliation struct {
	Institution string `json:"institution"`
	City        string `json:"city"`
}

// Team is a competing team. Number is the human-facing identifier used
// inside schedule documents; ID is assigned by the store on insert.
type Team struct {
	ID          uuid.UUID   `json:"id"`
	EventID     uuid.UUID   `json:"event_id"`
	Number      int         `json:"number"`
	Name        string      `json:"name"`
	Affiliation Affiliation `json:"affiliation"`
	Registered  bool        `json:"registered"`
}

// Table is a robot-game table. Name is unique within the event.
type Table struct {
	ID      uuid.UUID `json:"id"`
	EventID uuid.UUID `json:"event_id"`
	Name    string    `json:"name"`
}

// Room is a judging room. Name is unique within the event.
type Room struct {
	ID      uuid.UUID `json:"id"`
	EventID uuid.UUID `json:"event_id"`
	Name    string    `json:"name"`
}

// Participant is a match's slot at one table. TeamID is nil when no
// team is assigned to that table for the round; the slot itself is
// always present so a match covers every table of the event.
type Participant struct {
	TableID   uuid.UUID      `json:"table_id"`
	TableName string         `json:"table_name"`
	TeamID    *uuid.UUID     `json:"team_id"`
	Ready     bool           `json:"ready"`
	Present   types.Presence `json:"present"`
}

// Match is one robot-game match. The synthetic test match carries no
// number, no scheduled time and no participants; all other matches have
// exactly one participant per table, in the canonical table order.
type Match struct {
	ID            uuid.UUID     `json:"id"`
	EventID       uuid.UUID     `json:"event_id"`
	Stage         types.Stage   `json:"stage"`
	Round         int           `json:"round"`
	Number        int           `json:"number,omitempty"`
	ScheduledTime time.Time     `json:"scheduled_time,omitzero"`
	Status        types.Status  `json:"status"`
	Participants  []Participant `json:"participants"`
}

// JudgingSession is one team's slot in a judging room. TeamID is nil
// for unused slots; a session exists for every (time slot, room) pair
// in the schedule regardless of assignment.
type JudgingSession struct {
	ID            uuid.UUID    `json:"id"`
	EventID       uuid.UUID    `json:"event_id"`
	Number        int          `json:"number"`
	RoomID        uuid.UUID    `json:"room_id"`
	TeamID        *uuid.UUID   `json:"team_id"`
	ScheduledTime time.Time    `json:"scheduled_time"`
	Status        types.Status `json:"status"`
}
