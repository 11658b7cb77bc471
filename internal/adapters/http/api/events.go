// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	repository "github.com/okian/arena/internal/adapters/repository"
)

// EventsHandler handles event creation and read-back requests.
type EventsHandler struct {
	deps Dependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps Dependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleCreateEvent handles POST /events requests.
func (h *EventsHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_event"
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	start, _ := time.Parse(time.RFC3339, req.StartDate)
	var end time.Time
	if req.EndDate != "" {
		end, _ = time.Parse(time.RFC3339, req.EndDate)
	}

	event, err := h.deps.CreateEvent(r.Context(), req.Name, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_failure", err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// HandleGetEvent handles GET /events/{id} requests.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_event"
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	event, err := h.deps.Event(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "store_failure", err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// HandleListResource handles GET /events/{id}/{resource} requests for
// teams, tables, rooms, matches and sessions.
func (h *EventsHandler) HandleListResource(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_resource"
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	var out any
	switch r.PathValue("resource") {
	case "teams":
		out, err = h.deps.Teams(r.Context(), id)
	case "tables":
		out, err = h.deps.Tables(r.Context(), id)
	case "rooms":
		out, err = h.deps.Rooms(r.Context(), id)
	case "matches":
		out, err = h.deps.Matches(r.Context(), id)
	case "sessions":
		out, err = h.deps.Sessions(r.Context(), id)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "store_failure", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
