package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FavoriteRemover defines the interface for removing a favorite.
type FavoriteRemover interface {
	Remove(ctx context.Context, userID, favoriteID uuid.UUID) error
}

// NewRemoveFavoriteHandler returns an HTTP handler removing one favorite.
// Only the favorite's owner may remove it.
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite id"
// @Success 200 {object} handlers.MessageResponse "Removal confirmation"
// @Failure 403 {object} handlers.ErrorResponse "You are not authorized to remove this favorite"
// @Failure 404 {object} handlers.ErrorResponse "Favorite not found"
// @Router /api/favorites/{id} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		favoriteID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Favorite not found")
			return
		}

		if err := svc.Remove(r.Context(), identity.UserID, favoriteID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Favorite not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to remove this favorite")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Favorite removed successfully."})
	}
}
