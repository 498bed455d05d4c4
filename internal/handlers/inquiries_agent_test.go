package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAgentInquiriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	inquiries := []models.InquiryDB{
		{ID: uuid.New(), SenderName: "John", Message: "Is it still available?"},
		{ID: uuid.New(), SenderName: "Mary", Message: "Can I visit on Friday?"},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockAgentInquiryLister(ctrl)
		mockSvc.EXPECT().
			ListForAgent(gomock.Any(), agentID).
			Return(inquiries, nil)

		handler := NewAgentInquiriesHandler(mockSvc)
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/agent/inquiries", nil), agentID, models.RoleAgent)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.InquiryDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "John", resp[0].SenderName)
	})

	t.Run("no identity", func(t *testing.T) {
		mockSvc := NewMockAgentInquiryLister(ctrl)

		handler := NewAgentInquiriesHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/agent/inquiries", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Missing token", resp["error"])
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockAgentInquiryLister(ctrl)
		mockSvc.EXPECT().
			ListForAgent(gomock.Any(), agentID).
			Return(nil, errors.New("database failure"))

		handler := NewAgentInquiriesHandler(mockSvc)
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/agent/inquiries", nil), agentID, models.RoleAgent)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
