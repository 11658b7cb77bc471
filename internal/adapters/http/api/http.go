// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/arena/internal/app"
	"github.com/okian/arena/internal/domain/model"
)

// Default request body cap for schedule uploads.
const defaultMaxUploadBytes = 10 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CreateEvent(ctx context.Context, name string, start, end time.Time) (model.Event, error)
	Event(ctx context.Context, id uuid.UUID) (model.Event, error)

	ImportSchedule(ctx context.Context, eventID uuid.UUID, doc string) (app.ImportSummary, error)

	Teams(ctx context.Context, eventID uuid.UUID) ([]model.Team, error)
	Tables(ctx context.Context, eventID uuid.UUID) ([]model.Table, error)
	Rooms(ctx context.Context, eventID uuid.UUID) ([]model.Room, error)
	Matches(ctx context.Context, eventID uuid.UUID) ([]model.Match, error)
	Sessions(ctx context.Context, eventID uuid.UUID) ([]model.JudgingSession, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	eventsHandler *EventsHandler
	importHandler *ImportHandler
	healthHandler *HealthHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxUploadBytes caps the accepted schedule document size.
func WithMaxUploadBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.importHandler.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	s := &Server{
		eventsHandler: NewEventsHandler(deps),
		importHandler: NewImportHandler(deps),
		healthHandler: NewHealthHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("POST /events", MetricsMiddleware(s.eventsHandler.HandleCreateEvent, "events"))
	mux.HandleFunc("GET /events/{id}", MetricsMiddleware(s.eventsHandler.HandleGetEvent, "event"))
	mux.HandleFunc("GET /events/{id}/{resource}", MetricsMiddleware(s.eventsHandler.HandleListResource, "resource"))
	mux.HandleFunc("POST /events/{id}/schedule", MetricsMiddleware(s.importHandler.HandleImport, "import"))
}

// createEventRequest mirrors the POST /events body.
type createEventRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (e createEventRequest) validate() error {
	switch {
	case strings.TrimSpace(e.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(e.StartDate) == "":
		return errors.New("missing start_date")
	}
	if _, err := time.Parse(time.RFC3339, e.StartDate); err != nil {
		return errors.New("invalid start_date; must be RFC3339")
	}
	if e.EndDate != "" {
		if _, err := time.Parse(time.RFC3339, e.EndDate); err != nil {
			return errors.New("invalid end_date; must be RFC3339")
		}
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// eventID extracts and parses the {id} path segment.
func eventID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.UUID{}, errors.New("invalid event id")
	}
	return id, nil
}
