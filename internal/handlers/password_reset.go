package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/services"
)

// PasswordResetRequester defines the interface for issuing reset tokens.
type PasswordResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// PasswordResetRequest represents the JSON body for a reset request
// swagger:model PasswordResetRequest
type PasswordResetRequest struct {
	// Account email
	// required: true
	// example: a@x.com
	Email string `json:"email"`
}

// NewPasswordResetHandler returns an HTTP handler that issues a reset token
// and emails reset instructions. The response is identical whether or not
// the account exists.
// @Summary Request a password reset
// @Description Issues a reset token and emails instructions. Always responds with a generic success message.
// @Tags auth
// @Accept json
// @Produce json
// @Param passwordResetRequest body handlers.PasswordResetRequest true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Generic success message"
// @Failure 400 {object} handlers.ErrorResponse "Email is required"
// @Router /api/auth/password_resets [post]
func NewPasswordResetHandler(svc PasswordResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordResetRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Email is required")
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Email is required")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: "If that email exists, password reset instructions have been sent.",
		})
	}
}
