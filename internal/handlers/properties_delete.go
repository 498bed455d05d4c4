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

// ListingDeleter defines the interface that the soft-delete service must implement.
type ListingDeleter interface {
	Delete(ctx context.Context, agentID, listingID uuid.UUID) error
}

// NewDeletePropertyHandler returns an HTTP handler for listing soft deletion.
// The listing's status flips to deleted; the row and its dependents stay.
// @Summary Soft-delete a listing
// @Description Sets the listing status to deleted after the ownership check.
// @Tags properties
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} handlers.MessageResponse "Deletion confirmation"
// @Failure 403 {object} handlers.ErrorResponse "You are not authorized to delete this listing"
// @Failure 404 {object} handlers.ErrorResponse "Property listing not found"
// @Router /api/properties/{id} [delete]
// @Security BearerAuth
func NewDeletePropertyHandler(svc ListingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Property listing not found")
			return
		}

		if err := svc.Delete(r.Context(), identity.UserID, listingID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Property listing not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to delete this listing")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Property listing deleted successfully."})
	}
}
