package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeletePropertyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()
	listingID := uuid.New()

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+listingID.String(), nil)
		req = withURLParam(req, "id", listingID.String())
		return withIdentity(req, agentID, models.RoleAgent)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockListingDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), agentID, listingID).
			Return(nil)

		handler := NewDeletePropertyHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Property listing deleted successfully.", resp["message"])
	})

	t.Run("forbidden", func(t *testing.T) {
		mockSvc := NewMockListingDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), agentID, listingID).
			Return(services.ErrForbidden)

		handler := NewDeletePropertyHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "You are not authorized to delete this listing", resp["error"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockListingDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), agentID, listingID).
			Return(services.ErrNotFound)

		handler := NewDeletePropertyHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		mockSvc := NewMockListingDeleter(ctrl)

		handler := NewDeletePropertyHandler(mockSvc)
		req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+listingID.String(), nil)
		req = withURLParam(req, "id", listingID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
