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

func TestAdminUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.UserDB{
		{ID: uuid.New(), Email: "agent@example.com", Role: models.RoleAgent},
		{ID: uuid.New(), Email: "seeker@example.com", Role: models.RoleSeeker},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			ListAll(gomock.Any()).
			Return(users, nil)

		handler := NewAdminUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.UserDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "agent@example.com", resp[0].Email)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			ListAll(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewAdminUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp["error"])
	})
}
