package handlers

import (
	"context"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
)

// FavoriteLister defines the interface for listing a user's favorites.
type FavoriteLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} models.FavoriteDB "The caller's favorites"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Router /api/favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		favorites, err := svc.List(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, favorites)
	}
}
