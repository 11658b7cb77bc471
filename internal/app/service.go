// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/inflight"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/schedule"
	"github.com/okian/arena/pkg/logger"
	"github.com/okian/arena/pkg/metrics"
)

// Service orchestrates schedule imports and event access on top of the
// store. Parsing is pure; the service owns the two-pass protocol and
// the store round-trips between the passes.
type Service struct {
	store  repository.Store
	guard  inflight.Tracker
	logger logger.Logger
}

// ImportSummary reports what one import persisted.
type ImportSummary struct {
	Teams    int `json:"teams"`
	Tables   int `json:"tables"`
	Rooms    int `json:"rooms"`
	Matches  int `json:"matches"`
	Sessions int `json:"sessions"`
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracker sets the in-flight import tracker.
func WithTracker(t inflight.Tracker) Option {
	return func(s *Service) {
		if t != nil {
			s.guard = t
		}
	}
}

// New constructs a new Service with default configuration: an empty
// in-memory store and a fresh in-flight tracker.
func New(opts ...Option) *Service {
	s := &Service{
		store: repository.NewMemStore(),
		guard: inflight.NewTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// CreateEvent persists a new event.
func (s *Service) CreateEvent(ctx context.Context, name string, start, end time.Time) (model.Event, error) {
	event, err := s.store.CreateEvent(ctx, model.Event{Name: name, StartDate: start, EndDate: end})
	if err != nil {
		return model.Event{}, storeErr("event", err)
	}
	s.logger.Info(ctx, "event created",
		logger.String("event", event.ID.String()),
		logger.String("name", event.Name),
	)
	return event, nil
}

// Event returns an event by identifier.
func (s *Service) Event(ctx context.Context, id uuid.UUID) (model.Event, error) {
	return s.store.Event(ctx, id)
}

// Teams returns an event's persisted teams.
func (s *Service) Teams(ctx context.Context, eventID uuid.UUID) ([]model.Team, error) {
	return s.store.Teams(ctx, eventID)
}

// Tables returns an event's persisted tables in canonical order.
func (s *Service) Tables(ctx context.Context, eventID uuid.UUID) ([]model.Table, error) {
	return s.store.Tables(ctx, eventID)
}

// Rooms returns an event's persisted judging rooms.
func (s *Service) Rooms(ctx context.Context, eventID uuid.UUID) ([]model.Room, error) {
	return s.store.Rooms(ctx, eventID)
}

// Matches returns an event's persisted matches.
func (s *Service) Matches(ctx context.Context, eventID uuid.UUID) ([]model.Match, error) {
	return s.store.Matches(ctx, eventID)
}

// Sessions returns an event's persisted judging sessions.
func (s *Service) Sessions(ctx context.Context, eventID uuid.UUID) ([]model.JudgingSession, error) {
	return s.store.Sessions(ctx, eventID)
}

// ImportSchedule runs the full two-pass import of a schedule document
// into an event.
//
// Pass 1 extracts teams, tables and rooms and bulk-inserts them. The
// persisted copies are then fetched back so pass 2 derives matches and
// sessions against store-assigned identifiers, never against the
// parser's own output. Store calls are blocking and strictly ordered;
// nothing is retried here. A failure in pass 2 leaves pass-1 entities
// persisted; the caller decides whether to roll back.
func (s *Service) ImportSchedule(ctx context.Context, eventID uuid.UUID, doc string) (ImportSummary, error) {
	metrics.RecordImportStarted()
	start := time.Now()

	if !s.guard.Begin(ctx, eventID.String()) {
		metrics.RecordImportFailed("inflight")
		return ImportSummary{}, ErrImportInFlight
	}
	defer s.guard.End(ctx, eventID.String())

	event, err := s.store.Event(ctx, eventID)
	if err != nil {
		metrics.RecordImportFailed("event")
		return ImportSummary{}, storeErr("event", err)
	}

	existing, err := s.store.Teams(ctx, eventID)
	if err != nil {
		metrics.RecordImportFailed("teams")
		return ImportSummary{}, storeErr("teams", err)
	}
	if len(existing) > 0 {
		metrics.RecordImportFailed("precondition")
		return ImportSummary{}, ErrAlreadyImported
	}

	s.logger.Info(ctx, "parsing schedule document", logger.String("event", event.ID.String()))

	entities, err := schedule.ParseEntities(event, doc)
	if err != nil {
		metrics.RecordImportFailed("parse")
		return ImportSummary{}, err
	}
	metrics.RecordEntitiesParsed("team", len(entities.Teams))
	metrics.RecordEntitiesParsed("table", len(entities.Tables))
	metrics.RecordEntitiesParsed("room", len(entities.Rooms))

	if err := s.store.InsertTeams(ctx, entities.Teams); err != nil {
		metrics.RecordImportFailed("teams")
		return ImportSummary{}, storeErr("teams", err)
	}
	if err := s.store.InsertTables(ctx, entities.Tables); err != nil {
		metrics.RecordImportFailed("tables")
		return ImportSummary{}, storeErr("tables", err)
	}
	if err := s.store.InsertRooms(ctx, entities.Rooms); err != nil {
		metrics.RecordImportFailed("rooms")
		return ImportSummary{}, storeErr("rooms", err)
	}

	// The persisted copies, not the pass-1 values: only these carry
	// store-assigned identifiers.
	teams, err := s.store.Teams(ctx, eventID)
	if err != nil {
		metrics.RecordImportFailed("teams")
		return ImportSummary{}, storeErr("teams", err)
	}
	tables, err := s.store.Tables(ctx, eventID)
	if err != nil {
		metrics.RecordImportFailed("tables")
		return ImportSummary{}, storeErr("tables", err)
	}
	rooms, err := s.store.Rooms(ctx, eventID)
	if err != nil {
		metrics.RecordImportFailed("rooms")
		return ImportSummary{}, storeErr("rooms", err)
	}

	s.logger.Info(ctx, "deriving matches and sessions",
		logger.String("event", event.ID.String()),
		logger.Int("teams", len(teams)),
		logger.Int("tables", len(tables)),
		logger.Int("rooms", len(rooms)),
	)

	derived, err := schedule.ParseSchedule(event, teams, tables, rooms, doc)
	if err != nil {
		metrics.RecordImportFailed("derive")
		return ImportSummary{}, err
	}

	if err := s.store.InsertSessions(ctx, derived.Sessions); err != nil {
		metrics.RecordImportFailed("sessions")
		return ImportSummary{}, storeErr("sessions", err)
	}
	if err := s.store.InsertMatches(ctx, derived.Matches); err != nil {
		metrics.RecordImportFailed("matches")
		return ImportSummary{}, storeErr("matches", err)
	}
	metrics.RecordMatchesDerived(len(derived.Matches))
	metrics.RecordSessionsDerived(len(derived.Sessions))
	metrics.RecordImportCompleted()
	metrics.RecordImportDuration(float64(time.Since(start).Microseconds()) / 1000.0)

	summary := ImportSummary{
		Teams:    len(entities.Teams),
		Tables:   len(entities.Tables),
		Rooms:    len(entities.Rooms),
		Matches:  len(derived.Matches),
		Sessions: len(derived.Sessions),
	}
	s.logger.Info(ctx, "schedule import finished",
		logger.String("event", event.ID.String()),
		logger.Int("matches", summary.Matches),
		logger.Int("sessions", summary.Sessions),
	)
	return summary, nil
}
