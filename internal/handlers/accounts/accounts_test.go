package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/accountservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func userCtx(id int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, id)
}

func TestGetConnectedAccounts(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Active accounts",
			prepareMock: func() {
				service.EXPECT().GetConnectedAccounts(userCtx(1), 1).Return([]domain.ConnectedAccount{
					{ID: 5, UserID: 1, Platform: domain.PlatformYouTube, AccessToken: "secret", IsActive: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetConnectedAccounts(userCtx(1), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/connected-accounts/user/1", nil).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.GetConnectedAccounts(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.NotContains(t, rr.Body.String(), "secret")
				var resp []dto.ConnectedAccountResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGetAvailablePlatforms(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetAvailablePlatforms(userCtx(1), 1).Return(&domain.PlatformAvailability{
		Available: []domain.Platform{domain.PlatformInstagram, domain.PlatformTikTok},
		Connected: []domain.Platform{domain.PlatformYouTube},
	}, nil)

	req := httptest.NewRequest("GET", "/api/connected-accounts/user/1/available", nil).WithContext(userCtx(1))
	rr := httptest.NewRecorder()

	handler.GetAvailablePlatforms(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.PlatformAvailabilityResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []string{"instagram", "tiktok"}, resp.Available)
	assert.Equal(t, []string{"youtube"}, resp.Connected)
}

func TestConnectAccount(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "New link",
			body: `{"platform":"youtube","username":"jane","accessToken":"tok"}`,
			prepareMock: func() {
				service.EXPECT().ConnectAccount(userCtx(1), &domain.ConnectedAccount{
					UserID:      1,
					Platform:    domain.PlatformYouTube,
					Username:    "jane",
					AccessToken: "tok",
				}).Return(&domain.ConnectedAccount{ID: 5, UserID: 1, Platform: domain.PlatformYouTube, IsActive: true}, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Relinked",
			body: `{"platform":"tiktok","username":"jane","accountId":"tt1"}`,
			prepareMock: func() {
				service.EXPECT().ConnectAccount(userCtx(1), gomock.Any()).
					Return(&domain.ConnectedAccount{ID: 6, UserID: 1, Platform: domain.PlatformTikTok, IsActive: true}, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unsupported platform",
			body:          `{"platform":"myspace","username":"jane"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "platform must be one of: youtube instagram tiktok",
		},
		{
			name:          "Invalid body",
			body:          `[]`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal error",
			body: `{"platform":"instagram"}`,
			prepareMock: func() {
				service.EXPECT().ConnectAccount(userCtx(1), gomock.Any()).Return(nil, false, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/connected-accounts", bytes.NewReader([]byte(tt.body))).WithContext(userCtx(1))
			rr := httptest.NewRecorder()

			handler.ConnectAccount(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestDisconnectAccount(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Disconnected",
			accountID: "5",
			prepareMock: func() {
				service.EXPECT().DisconnectAccount(gomock.Any(), 5, 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Someone else's account",
			accountID: "6",
			prepareMock: func() {
				service.EXPECT().DisconnectAccount(gomock.Any(), 6, 1).Return(accountservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			accountID:    "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("accountId", tt.accountID)
			ctx := context.WithValue(userCtx(1), chi.RouteCtxKey, rctx)
			req := httptest.NewRequest("DELETE", "/api/connected-accounts/"+tt.accountID, nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			handler.DisconnectAccount(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
