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

func TestRemoveFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	favoriteID := uuid.New()

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/"+favoriteID.String(), nil)
		req = withURLParam(req, "id", favoriteID.String())
		return withIdentity(req, userID, models.RoleSeeker)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockFavoriteRemover(ctrl)
		mockSvc.EXPECT().
			Remove(gomock.Any(), userID, favoriteID).
			Return(nil)

		handler := NewRemoveFavoriteHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Favorite removed successfully.", resp["message"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockFavoriteRemover(ctrl)
		mockSvc.EXPECT().
			Remove(gomock.Any(), userID, favoriteID).
			Return(services.ErrNotFound)

		handler := NewRemoveFavoriteHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Favorite not found", resp["error"])
	})

	t.Run("forbidden", func(t *testing.T) {
		mockSvc := NewMockFavoriteRemover(ctrl)
		mockSvc.EXPECT().
			Remove(gomock.Any(), userID, favoriteID).
			Return(services.ErrForbidden)

		handler := NewRemoveFavoriteHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, newRequest())

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "You are not authorized to remove this favorite", resp["error"])
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockFavoriteRemover(ctrl)

		handler := NewRemoveFavoriteHandler(mockSvc)
		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/not-a-uuid", nil)
		req = withURLParam(req, "id", "not-a-uuid")
		req = withIdentity(req, userID, models.RoleSeeker)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		mockSvc := NewMockFavoriteRemover(ctrl)

		handler := NewRemoveFavoriteHandler(mockSvc)
		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/"+favoriteID.String(), nil)
		req = withURLParam(req, "id", favoriteID.String())
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
