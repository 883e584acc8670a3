package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DarshanCHMSR/search-engine/internal/auth/domain"
	"github.com/DarshanCHMSR/search-engine/internal/auth/service"
)

func activeUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("OldSecret1"), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-123",
		Email:        "a@x.com",
		PasswordHash: string(hash),
		IsActive:     true,
		Preferences:  domain.DefaultPreferences(),
	}
}

func TestUpdatePreferencesEndpoint(t *testing.T) {
	app, mockRepo, mockTokens := newAuthApp(t)
	user := activeUser(t)

	mockTokens.EXPECT().Verify("good").Return(&service.Claims{UserID: "user-123"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil).Times(2)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	req := jsonRequest(t, http.MethodPut, "/api/user/preferences",
		map[string]any{"searchEngine": "searxng", "theme": "dark"})
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdatePreferencesEndpoint_InvalidEngine(t *testing.T) {
	app, mockRepo, mockTokens := newAuthApp(t)

	mockTokens.EXPECT().Verify("good").Return(&service.Claims{UserID: "user-123"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(activeUser(t), nil)

	req := jsonRequest(t, http.MethodPut, "/api/user/preferences",
		map[string]any{"searchEngine": "altavista"})
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChangePasswordEndpoint_WrongCurrent(t *testing.T) {
	app, mockRepo, mockTokens := newAuthApp(t)

	mockTokens.EXPECT().Verify("good").Return(&service.Claims{UserID: "user-123"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(activeUser(t), nil).Times(2)

	req := jsonRequest(t, http.MethodPut, "/api/user/password",
		map[string]string{"currentPassword": "wrong", "newPassword": "NewSecret1"})
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeactivateAccountEndpoint(t *testing.T) {
	app, mockRepo, mockTokens := newAuthApp(t)
	user := activeUser(t)

	mockTokens.EXPECT().Verify("good").Return(&service.Claims{UserID: "user-123"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil).Times(2)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, u *domain.User) error {
			assert.False(t, u.IsActive)
			return nil
		})

	req := httptest.NewRequest(http.MethodDelete, "/api/user/account", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "token" && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "token cookie should be cleared")
}

func TestStatsEndpoint(t *testing.T) {
	app, mockRepo, mockTokens := newAuthApp(t)

	mockTokens.EXPECT().Verify("good").Return(&service.Claims{UserID: "user-123"}, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(activeUser(t), nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/api/user/stats", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
