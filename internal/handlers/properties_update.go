package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListingUpdater defines the interface that the update service must implement.
type ListingUpdater interface {
	Update(ctx context.Context, agentID, listingID uuid.UUID, input services.UpdateListingInput) (*models.ListingDB, error)
}

// NewUpdatePropertyHandler returns an HTTP handler for listing updates.
// Only the owning agent may update a listing. A zero or empty field keeps
// the stored value; a present images array replaces all images.
// @Summary Update a listing
// @Description Merges provided fields into the listing after the ownership check.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Listing id"
// @Param listing body handlers.ListingPayload true "Fields to merge and optional replacement images"
// @Success 200 {object} models.ListingDB "The updated listing"
// @Failure 403 {object} handlers.ErrorResponse "You are not authorized to update this listing"
// @Failure 404 {object} handlers.ErrorResponse "Property listing not found"
// @Router /api/properties/{id} [put]
// @Security BearerAuth
func NewUpdatePropertyHandler(svc ListingUpdater) http.HandlerFunc {
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

		payload, fields, err := decodeListingPayload(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		listing, err := svc.Update(r.Context(), identity.UserID, listingID, services.UpdateListingInput{
			Title:          payload.Title,
			Description:    payload.Description,
			PropertyType:   payload.PropertyType,
			Price:          payload.Price,
			Address:        payload.Address,
			City:           payload.City,
			ZipCode:        payload.ZipCode,
			Amenities:      payload.Amenities,
			Bedrooms:       payload.Bedrooms,
			Bathrooms:      payload.Bathrooms,
			Area:           payload.Area,
			Latitude:       payload.Latitude,
			Longitude:      payload.Longitude,
			Images:         payload.Images,
			ProvidedFields: fields,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Property listing not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You are not authorized to update this listing")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}
