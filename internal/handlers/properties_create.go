package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/google/uuid"
)

// ListingCreator defines the interface that the creation service must implement.
type ListingCreator interface {
	Create(ctx context.Context, agentID uuid.UUID, input services.CreateListingInput) (*models.ListingDB, error)
}

// ListingPayload is the JSON body shared by listing create and update
// requests. Images is nil when the key is absent; a present array, even
// empty, replaces the image set wholesale on update.
// swagger:model ListingPayload
type ListingPayload struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	PropertyType string                 `json:"property_type"`
	Price        float64                `json:"price"`
	Address      string                 `json:"address"`
	City         string                 `json:"city"`
	ZipCode      string                 `json:"zip_code"`
	Amenities    []string               `json:"amenities"`
	Bedrooms     int                    `json:"bedrooms"`
	Bathrooms    int                    `json:"bathrooms"`
	Area         float64                `json:"area"`
	Latitude     float64                `json:"latitude"`
	Longitude    float64                `json:"longitude"`
	Images       *[]services.ImageInput `json:"images"`
}

// decodeListingPayload decodes the body and also captures which top-level
// keys were present, for the audit trail. Key order is normalized.
func decodeListingPayload(r *http.Request) (*ListingPayload, []string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, nil, err
	}

	var payload ListingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}
	fields := make([]string, 0, len(raw))
	for k := range raw {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	return &payload, fields, nil
}

// NewCreatePropertyHandler returns an HTTP handler for listing creation.
// @Summary Create a listing
// @Description Creates a listing owned by the authenticated agent. Status is always published immediately; any draft intent in the payload is ignored.
// @Tags properties
// @Accept json
// @Produce json
// @Param listing body handlers.ListingPayload true "Listing fields and optional images"
// @Success 200 {object} models.ListingDB "The persisted listing"
// @Failure 400 {object} handlers.ErrorResponse "Missing required property listing fields"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: Insufficient role"
// @Router /api/properties [post]
// @Security BearerAuth
func NewCreatePropertyHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		payload, fields, err := decodeListingPayload(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing required property listing fields")
			return
		}

		var images []services.ImageInput
		if payload.Images != nil {
			images = *payload.Images
		}

		listing, err := svc.Create(r.Context(), identity.UserID, services.CreateListingInput{
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
			Images:         images,
			ProvidedFields: fields,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing required property listing fields")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}
