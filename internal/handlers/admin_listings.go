package handlers

import (
	"context"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
)

// AllListingsLister defines the interface for the admin listing view.
type AllListingsLister interface {
	ListAll(ctx context.Context) ([]models.ListingDB, error)
}

// NewAdminListingsHandler returns an HTTP handler listing every property
// listing regardless of status, for admin moderation.
// @Summary List all property listings
// @Tags admin
// @Produce json
// @Success 200 {array} models.ListingDB "All property listings"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: Insufficient role"
// @Router /api/admin/listings [get]
// @Security BearerAuth
func NewAdminListingsHandler(svc AllListingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, listings)
	}
}
