package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/google/uuid"
)

// InquiryCreator defines the interface that the inquiry service must implement.
type InquiryCreator interface {
	Create(ctx context.Context, input services.CreateInquiryInput) (*models.InquiryDB, error)
}

// InquiryRequest represents the JSON body for an inquiry submission
// swagger:model InquiryRequest
type InquiryRequest struct {
	// Listing the inquiry is about
	// required: true
	PropertyListingID string `json:"property_listing_id"`

	// Sender display name
	// required: true
	SenderName string `json:"sender_name"`

	// Sender contact email
	// required: true
	SenderEmail string `json:"sender_email"`

	// Optional sender phone
	SenderPhone *string `json:"sender_phone"`

	// Inquiry body
	// required: true
	Message string `json:"message"`
}

// NewCreateInquiryHandler returns an HTTP handler for inquiry submission.
// Guests may submit inquiries; no authentication is required.
// @Summary Submit an inquiry
// @Description Stores a message about a listing from a possibly unauthenticated sender.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body handlers.InquiryRequest true "Inquiry"
// @Success 200 {object} models.InquiryDB "The persisted inquiry"
// @Failure 400 {object} handlers.ErrorResponse "Missing required inquiry fields"
// @Router /api/inquiries [post]
func NewCreateInquiryHandler(svc InquiryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InquiryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Missing required inquiry fields")
			return
		}

		listingID, err := uuid.Parse(req.PropertyListingID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing required inquiry fields")
			return
		}

		inquiry, err := svc.Create(r.Context(), services.CreateInquiryInput{
			PropertyListingID: listingID,
			SenderName:        req.SenderName,
			SenderEmail:       req.SenderEmail,
			SenderPhone:       req.SenderPhone,
			Message:           req.Message,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Missing required inquiry fields")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, inquiry)
	}
}
