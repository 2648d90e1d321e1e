package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-scopeguard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
)

// runIDParam extracts the run ID path parameter.
func runIDParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", domain.Invalid("id", "is required")
	}
	return id, nil
}

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("operation", "writeJSON"),
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes caps JSON request bodies.
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body into dst. On failure it writes a
// 400 response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.Invalid("body", "invalid JSON"))
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and validates it, writing an
// error response and returning false on failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
