package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/pkg/metrics"
)

// In-memory Store implementation.
//
// Entities are held per event in insertion order; reads hand out
// defensive copies so callers can never reach the store's backing
// slices. Uniqueness of team numbers and table/room names is checked
// against both the already-persisted set and the batch itself, and a
// violating batch inserts nothing.

// eventData bundles everything persisted for one event.
type eventData struct {
	event    model.Event
	teams    []model.Team
	tables   []model.Table
	rooms    []model.Room
	matches  []model.Match
	sessions []model.JudgingSession
}

// MemStore is a thread-safe in-memory Store.
type MemStore struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*eventData
	newID  func() uuid.UUID
}

// compile-time interface check
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		events: make(map[uuid.UUID]*eventData),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEvent persists a new event and returns the stored copy.
func (s *MemStore) CreateEvent(_ context.Context, event model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.newID()
	s.events[event.ID] = &eventData{event: event}
	return event, nil
}

// Event returns the event with the given identifier.
func (s *MemStore) Event(_ context.Context, id uuid.UUID) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return data.event, nil
}

// InsertTeams bulk-inserts teams, assigning identifiers. Team numbers
// must be unique within the event.
func (s *MemStore) InsertTeams(_ context.Context, teams []model.Team) error {
	defer s.observeUpdate(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID][]model.Team)
	for _, team := range teams {
		data, ok := s.events[team.EventID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, team.EventID)
		}
		seen := make(map[int]struct{}, len(data.teams))
		for _, existing := range data.teams {
			seen[existing.Number] = struct{}{}
		}
		for _, pending := range staged[team.EventID] {
			seen[pending.Number] = struct{}{}
		}
		if _, dup := seen[team.Number]; dup {
			return fmt.Errorf("%w: team number %d", ErrDuplicate, team.Number)
		}
		team.ID = s.newID()
		staged[team.EventID] = append(staged[team.EventID], team)
	}
	for eventID, batch := range staged {
		s.events[eventID].teams = append(s.events[eventID].teams, batch...)
	}
	return nil
}

// InsertTables bulk-inserts tables, assigning identifiers and keeping
// insertion order: it is the canonical table order for the event.
func (s *MemStore) InsertTables(_ context.Context, tables []model.Table) error {
	defer s.observeUpdate(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID][]model.Table)
	for _, table := range tables {
		data, ok := s.events[table.EventID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, table.EventID)
		}
		seen := make(map[string]struct{}, len(data.tables))
		for _, existing := range data.tables {
			seen[existing.Name] = struct{}{}
		}
		for _, pending := range staged[table.EventID] {
			seen[pending.Name] = struct{}{}
		}
		if _, dup := seen[table.Name]; dup {
			return fmt.Errorf("%w: table %q", ErrDuplicate, table.Name)
		}
		table.ID = s.newID()
		staged[table.EventID] = append(staged[table.EventID], table)
	}
	for eventID, batch := range staged {
		s.events[eventID].tables = append(s.events[eventID].tables, batch...)
	}
	return nil
}

// InsertRooms bulk-inserts judging rooms, assigning identifiers.
func (s *MemStore) InsertRooms(_ context.Context, rooms []model.Room) error {
	defer s.observeUpdate(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID][]model.Room)
	for _, room := range rooms {
		data, ok := s.events[room.EventID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, room.EventID)
		}
		seen := make(map[string]struct{}, len(data.rooms))
		for _, existing := range data.rooms {
			seen[existing.Name] = struct{}{}
		}
		for _, pending := range staged[room.EventID] {
			seen[pending.Name] = struct{}{}
		}
		if _, dup := seen[room.Name]; dup {
			return fmt.Errorf("%w: room %q", ErrDuplicate, room.Name)
		}
		room.ID = s.newID()
		staged[room.EventID] = append(staged[room.EventID], room)
	}
	for eventID, batch := range staged {
		s.events[eventID].rooms = append(s.events[eventID].rooms, batch...)
	}
	return nil
}

// Teams returns the event's teams in insertion order.
func (s *MemStore) Teams(_ context.Context, eventID uuid.UUID) ([]model.Team, error) {
	defer s.observeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return append([]model.Team(nil), data.teams...), nil
}

// Tables returns the event's tables in canonical order.
func (s *MemStore) Tables(_ context.Context, eventID uuid.UUID) ([]model.Table, error) {
	defer s.observeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return append([]model.Table(nil), data.tables...), nil
}

// Rooms returns the event's rooms in insertion order.
func (s *MemStore) Rooms(_ context.Context, eventID uuid.UUID) ([]model.Room, error) {
	defer s.observeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return append([]model.Room(nil), data.rooms...), nil
}

// InsertMatches bulk-inserts matches, assigning identifiers.
func (s *MemStore) InsertMatches(_ context.Context, matches []model.Match) error {
	defer s.observeUpdate(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID][]model.Match)
	for _, match := range matches {
		if _, ok := s.events[match.EventID]; !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, match.EventID)
		}
		match.ID = s.newID()
		match.Participants = append([]model.Participant(nil), match.Participants...)
		staged[match.EventID] = append(staged[match.EventID], match)
	}
	for eventID, batch := range staged {
		s.events[eventID].matches = append(s.events[eventID].matches, batch...)
	}
	return nil
}

// InsertSessions bulk-inserts judging sessions, assigning identifiers.
func (s *MemStore) InsertSessions(_ context.Context, sessions []model.JudgingSession) error {
	defer s.observeUpdate(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[uuid.UUID][]model.JudgingSession)
	for _, session := range sessions {
		if _, ok := s.events[session.EventID]; !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, session.EventID)
		}
		session.ID = s.newID()
		staged[session.EventID] = append(staged[session.EventID], session)
	}
	for eventID, batch := range staged {
		s.events[eventID].sessions = append(s.events[eventID].sessions, batch...)
	}
	return nil
}

// Matches returns the event's matches in insertion order.
func (s *MemStore) Matches(_ context.Context, eventID uuid.UUID) ([]model.Match, error) {
	defer s.observeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	out := make([]model.Match, len(data.matches))
	for i, match := range data.matches {
		match.Participants = append([]model.Participant(nil), match.Participants...)
		out[i] = match
	}
	return out, nil
}

// Sessions returns the event's sessions in insertion order.
func (s *MemStore) Sessions(_ context.Context, eventID uuid.UUID) ([]model.JudgingSession, error) {
	defer s.observeQuery(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return append([]model.JudgingSession(nil), data.sessions...), nil
}

func (s *MemStore) observeUpdate(start time.Time) {
	metrics.RecordStoreUpdateLatency(float64(time.Since(start).Microseconds()) / 1000.0)
}

func (s *MemStore) observeQuery(start time.Time) {
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Microseconds()) / 1000.0)
}
