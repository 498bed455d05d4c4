package handlers

import (
	"context"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
)

// UserLister defines the interface for the admin user listing.
type UserLister interface {
	ListAll(ctx context.Context) ([]models.UserDB, error)
}

// NewAdminUsersHandler returns an HTTP handler listing every user account
// for admin moderation.
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserDB "All user accounts"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: Insufficient role"
// @Router /api/admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
