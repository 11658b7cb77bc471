// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"io"
	"net/http"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/app"
	"github.com/okian/arena/internal/domain/schedule"
)

// ImportHandler handles schedule upload and import requests.
type ImportHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps Dependencies) *ImportHandler {
	return &ImportHandler{deps: deps, maxUploadBytes: defaultMaxUploadBytes}
}

// HandleImport handles POST /events/{id}/schedule requests. The body is
// the raw schedule document; the response reports what was persisted.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import_schedule"
	id, err := eventID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", newKind(op, ErrEmptyDocument))
		return
	}

	summary, err := h.deps.ImportSchedule(r.Context(), id, string(body))
	if err != nil {
		status, code := importStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

// importStatus maps import failures onto HTTP status codes and stable
// error codes without leaking row-level parser internals into the
// mapping itself.
func importStatus(err error) (int, string) {
	switch {
	case errors.Is(err, schedule.ErrMalformedDocument):
		return http.StatusBadRequest, "malformed_document"
	case errors.Is(err, schedule.ErrUnsupportedVersion):
		return http.StatusBadRequest, "unsupported_version"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, app.ErrImportInFlight):
		return http.StatusConflict, "import_in_flight"
	case errors.Is(err, app.ErrAlreadyImported):
		return http.StatusConflict, "already_imported"
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict, "duplicate_entity"
	case errors.Is(err, schedule.ErrUnresolvedReference):
		return http.StatusUnprocessableEntity, "unresolved_reference"
	default:
		return http.StatusInternalServerError, "store_failure"
	}
}
