package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListingDetailGetter defines the interface that the detail service must implement.
type ListingDetailGetter interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*models.ListingDetail, error)
}

// NewGetPropertyHandler returns an HTTP handler for the listing detail.
// The detail is readable by id regardless of listing status.
// @Summary Get one listing
// @Description Full listing detail: the row, its images in display order, and the owning agent's public profile.
// @Tags properties
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} models.ListingDetail "Listing detail"
// @Failure 404 {object} handlers.ErrorResponse "Property listing not found"
// @Router /api/properties/{id} [get]
func NewGetPropertyHandler(svc ListingDetailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Property listing not found")
			return
		}

		detail, err := svc.GetDetail(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Property listing not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}
