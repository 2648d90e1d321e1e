package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-scopeguard/internal/bench"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

// RunHandler serves benchmark runs.
type RunHandler struct {
	service ports.RunService
}

// NewRunHandler creates a RunHandler backed by the given service port.
func NewRunHandler(service ports.RunService) *RunHandler {
	return &RunHandler{service: service}
}

// ListRuns handles GET /api/v1/runs.
func (h *RunHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.service.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRunListResponse(runs))
}

// CreateRun handles POST /api/v1/runs. The run executes synchronously and
// the response carries its record.
func (h *RunHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRunRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.Execute(r.Context(), req.ToMode())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/runs/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToRunResponse(created))
}

// GetRun handles GET /api/v1/runs/{id}. With ?format=table the run is
// rendered as the console table in text/plain.
func (h *RunHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := runIDParam(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if r.URL.Query().Get("format") != "table" {
		writeJSON(w, r, http.StatusOK, dto.ToRunResponse(found))
		return
	}

	var buf bytes.Buffer
	if err := bench.Render(&buf, found); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to write run table",
			slog.String("run_id", id),
			slog.Any("error", err),
		)
	}
}
