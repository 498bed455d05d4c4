package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
)

// ErrorResponse is the error body returned by every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// MessageResponse is a generic success body.
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Property listing deleted successfully.
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
