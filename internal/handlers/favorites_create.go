package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/google/uuid"
)

// FavoriteAdder defines the interface for adding a favorite.
type FavoriteAdder interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) (*models.FavoriteDB, error)
}

// FavoriteRequest represents the JSON body for adding a favorite
// swagger:model FavoriteRequest
type FavoriteRequest struct {
	// Listing to favorite
	// required: true
	PropertyListingID string `json:"property_listing_id"`
}

// NewAddFavoriteHandler returns an HTTP handler adding a listing to the
// caller's favorites. Any authenticated role may add favorites.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body handlers.FavoriteRequest true "Listing to favorite"
// @Success 200 {object} models.FavoriteDB "The persisted favorite"
// @Failure 400 {object} handlers.ErrorResponse "property_listing_id is required"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Router /api/favorites [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "property_listing_id is required")
			return
		}

		listingID, err := uuid.Parse(req.PropertyListingID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "property_listing_id is required")
			return
		}

		favorite, err := svc.Add(r.Context(), identity.UserID, listingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "property_listing_id is required")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, favorite)
	}
}
