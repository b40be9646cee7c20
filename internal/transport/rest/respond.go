package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/czytanka/backend/internal/domain"
)

// ErrorResponse is the JSON error envelope for every non-2xx answer.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError translates domain errors into HTTP statuses. Unknown errors
// become opaque 500s; the handler is expected to have logged them already.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make(map[string]string, len(vErr.Errors))
		for _, f := range vErr.Errors {
			fields[f.Field] = f.Message
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "already exists"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "conflict"})
	case errors.Is(err, domain.ErrExtractionUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "AI service unavailable, try again later"})
	case errors.Is(err, domain.ErrExtractionFormat):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "AI service returned an unusable answer"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// decodeBody parses a JSON request body into dst with unknown fields
// rejected.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}

// logError logs err unless it is an expected client-side failure.
func logError(log *slog.Logger, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) {
		return
	}
	log.ErrorContext(r.Context(), "request failed",
		"method", r.Method, "path", r.URL.Path, "error", err)
}
