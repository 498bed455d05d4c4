package handlers

import (
	"bytes"
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

func TestAddFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listingID := uuid.New()
	favorite := &models.FavoriteDB{ID: uuid.New(), UserID: userID, PropertyListingID: listingID}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockFavoriteAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), userID, listingID).
			Return(favorite, nil)

		handler := NewAddFavoriteHandler(mockSvc)
		body := `{"property_listing_id":"` + listingID.String() + `"}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString(body)), userID, models.RoleSeeker)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.FavoriteDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, favorite.ID, resp.ID)
	})

	t.Run("missing listing id", func(t *testing.T) {
		mockSvc := NewMockFavoriteAdder(ctrl)

		handler := NewAddFavoriteHandler(mockSvc)
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString(`{}`)), userID, models.RoleSeeker)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "property_listing_id is required", resp["error"])
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockFavoriteAdder(ctrl)

		handler := NewAddFavoriteHandler(mockSvc)
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString("{broken")), userID, models.RoleSeeker)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		mockSvc := NewMockFavoriteAdder(ctrl)

		handler := NewAddFavoriteHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockFavoriteAdder(ctrl)
		mockSvc.EXPECT().
			Add(gomock.Any(), userID, listingID).
			Return(nil, errors.New("database failure"))

		handler := NewAddFavoriteHandler(mockSvc)
		body := `{"property_listing_id":"` + listingID.String() + `"}`
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewBufferString(body)), userID, models.RoleSeeker)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
