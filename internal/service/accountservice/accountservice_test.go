package accountservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetConnectedAccounts(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return([]domain.ConnectedAccount{{ID: 1}}, nil)
	accounts, err := service.GetConnectedAccounts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	repo.EXPECT().FindActiveByUserID(gomock.Any(), 2).Return(nil, errors.New("db error"))
	_, err = service.GetConnectedAccounts(context.Background(), 2)
	assert.Error(t, err)
}

func TestConnectAccount(t *testing.T) {
	service, repo := NewMock(t)
	service.newID = func(p domain.Platform) string { return string(p) + "_fixed" }

	tests := []struct {
		name            string
		account         *domain.ConnectedAccount
		prepareMock     func()
		expectedCreated bool
		expectedID      string
		expectedError   error
	}{
		{
			name:    "New account gets a generated id",
			account: &domain.ConnectedAccount{UserID: 1, Platform: domain.PlatformYouTube, Username: "ann"},
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), &domain.ConnectedAccount{
					UserID: 1, Platform: domain.PlatformYouTube, Username: "ann", AccountID: "youtube_fixed",
				}).DoAndReturn(func(_ context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error) {
					a.ID = 4
					a.IsActive = true
					return a, true, nil
				})
			},
			expectedCreated: true,
			expectedID:      "youtube_fixed",
		},
		{
			name:    "Existing account keeps the supplied id",
			account: &domain.ConnectedAccount{UserID: 1, Platform: domain.PlatformTikTok, AccountID: "tt-9"},
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error) {
					return a, false, nil
				})
			},
			expectedID: "tt-9",
		},
		{
			name:          "Unknown platform",
			account:       &domain.ConnectedAccount{UserID: 1, Platform: "myspace"},
			prepareMock:   func() {},
			expectedError: ErrInvalidPlatform,
		},
		{
			name:    "Repository error",
			account: &domain.ConnectedAccount{UserID: 1, Platform: domain.PlatformInstagram, AccountID: "ig"},
			prepareMock: func() {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			saved, created, err := service.ConnectAccount(context.Background(), tt.account)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCreated, created)
			assert.Equal(t, tt.expectedID, saved.AccountID)
		})
	}
}

func TestMockAccountID(t *testing.T) {
	id := mockAccountID(domain.PlatformInstagram)
	assert.True(t, strings.HasPrefix(id, "instagram_"))
	assert.NotEqual(t, id, mockAccountID(domain.PlatformInstagram))
}

func TestDisconnectAccount(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Deactivate(gomock.Any(), 4, 1).Return(true, nil)
	assert.NoError(t, service.DisconnectAccount(context.Background(), 4, 1))

	repo.EXPECT().Deactivate(gomock.Any(), 4, 2).Return(false, nil)
	assert.ErrorIs(t, service.DisconnectAccount(context.Background(), 4, 2), ErrAccountNotFound)

	repo.EXPECT().Deactivate(gomock.Any(), 5, 1).Return(false, errors.New("db error"))
	assert.Error(t, service.DisconnectAccount(context.Background(), 5, 1))
}

func TestGetAvailablePlatforms(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name              string
		accounts          []domain.ConnectedAccount
		expectedAvailable []domain.Platform
		expectedConnected []domain.Platform
	}{
		{
			name:              "Nothing connected",
			accounts:          []domain.ConnectedAccount{},
			expectedAvailable: []domain.Platform{domain.PlatformYouTube, domain.PlatformInstagram, domain.PlatformTikTok},
			expectedConnected: []domain.Platform{},
		},
		{
			name:              "TikTok connected",
			accounts:          []domain.ConnectedAccount{{Platform: domain.PlatformTikTok}},
			expectedAvailable: []domain.Platform{domain.PlatformYouTube, domain.PlatformInstagram},
			expectedConnected: []domain.Platform{domain.PlatformTikTok},
		},
		{
			name: "Everything connected",
			accounts: []domain.ConnectedAccount{
				{Platform: domain.PlatformInstagram}, {Platform: domain.PlatformYouTube}, {Platform: domain.PlatformTikTok},
			},
			expectedAvailable: []domain.Platform{},
			expectedConnected: []domain.Platform{domain.PlatformYouTube, domain.PlatformInstagram, domain.PlatformTikTok},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindActiveByUserID(gomock.Any(), 1).Return(tt.accounts, nil)
			result, err := service.GetAvailablePlatforms(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAvailable, result.Available)
			assert.Equal(t, tt.expectedConnected, result.Connected)
		})
	}
}
