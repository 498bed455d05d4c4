package handlers

import (
	"context"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/middlewares"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
)

// AgentInquiryLister defines the interface for listing an agent's inquiries.
type AgentInquiryLister interface {
	ListForAgent(ctx context.Context, agentID uuid.UUID) ([]models.InquiryDB, error)
}

// NewAgentInquiriesHandler returns an HTTP handler listing all inquiries
// about the authenticated agent's listings, newest first. No pagination.
// @Summary List inquiries for the agent's listings
// @Tags inquiries
// @Produce json
// @Success 200 {array} models.InquiryDB "Inquiries, newest first"
// @Failure 401 {object} handlers.ErrorResponse "Missing token"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden: Insufficient role"
// @Router /api/agent/inquiries [get]
// @Security BearerAuth
func NewAgentInquiriesHandler(svc AgentInquiryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.IdentityFromContext(r.Context())
		if identity == nil {
			writeError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		inquiries, err := svc.ListForAgent(r.Context(), identity.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, inquiries)
	}
}
