// Package http exposes the fleet over a REST surface routed with gorilla/mux.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetrent-backend/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unknown errors
// surface as a generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		writeJSON(w, statusFor(derr.Kind), errorResponse{Message: derr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput, domain.KindBusinessRule:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.Error{Kind: domain.KindInvalidInput, Message: "malformed request body"}
	}
	return nil
}
