package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService, time.Hour)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		role          domain.Role
		prepareMock   func()
		expectedRole  domain.Role
		expectedError error
	}{
		{
			name:  "Registers clipper by default",
			email: "Ann@Example.com ",
			role:  "",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), &domain.User{
					Name: "Ann", Email: "ann@example.com", PasswordHash: "hashed", Role: domain.RoleClipper,
				}).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					u.ID = 1
					return u, nil
				})
			},
			expectedRole: domain.RoleClipper,
		},
		{
			name:  "Registers creator",
			email: "bob@example.com",
			role:  domain.RoleCreator,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					u.ID = 2
					return u, nil
				})
			},
			expectedRole: domain.RoleCreator,
		},
		{
			name:  "Unknown role falls back to clipper",
			email: "eve@example.com",
			role:  "admin",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "eve@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					return u, nil
				})
			},
			expectedRole: domain.RoleClipper,
		},
		{
			name:  "User already exists",
			email: "ann@example.com",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:  "Concurrent duplicate insert",
			email: "ann@example.com",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrUserExists,
		},
		{
			name:  "Hash failure",
			email: "ann@example.com",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("", auth.ErrEmptyPassword)
			},
			expectedError: auth.ErrEmptyPassword,
		},
		{
			name:  "Lookup failure",
			email: "ann@example.com",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), "Ann", tt.email, "secret", tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, user.Role)
		})
	}
}

func TestLogin(t *testing.T) {
	service, repo, hashService, jwtService := NewMock(t)
	stored := &domain.User{ID: 1, Email: "ann@example.com", PasswordHash: "hashed", Role: domain.RoleClipper}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(true)
				jwtService.EXPECT().GenerateJWT(1, "ann@example.com", "clipper", gomock.Any()).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Token failure",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(true)
				jwtService.EXPECT().GenerateJWT(1, "ann@example.com", "clipper", gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, user, err := service.Login(context.Background(), "ann@example.com", "secret")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, stored, user)
		})
	}
}

func TestSwitchRole(t *testing.T) {
	service, repo, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Switch to creator",
			role: domain.RoleCreator,
			prepareMock: func() {
				repo.EXPECT().UpdateRole(gomock.Any(), 1, domain.RoleCreator).
					Return(&domain.User{ID: 1, Email: "ann@example.com", Role: domain.RoleCreator}, nil)
				jwtService.EXPECT().GenerateJWT(1, "ann@example.com", "creator", gomock.Any()).Return("fresh", nil)
			},
		},
		{
			name:          "Invalid role",
			role:          "admin",
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name: "User missing",
			role: domain.RoleClipper,
			prepareMock: func() {
				repo.EXPECT().UpdateRole(gomock.Any(), 1, domain.RoleClipper).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, user, err := service.SwitchRole(context.Background(), 1, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "fresh", token)
			assert.Equal(t, tt.role, user.Role)
		})
	}
}

func TestMe(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
	user, err := service.Me(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	repo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
	_, err = service.Me(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, errors.New("db error"))
	_, err = service.Me(context.Background(), 3)
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	_, err := service.UpdateProfile(context.Background(), 1, domain.Profile{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	profile := domain.Profile{Name: "Ann", Username: "ann", Bio: "hi"}
	repo.EXPECT().UpdateProfile(gomock.Any(), 1, profile).Return(&domain.User{ID: 1, Name: "Ann", Username: "ann"}, nil)
	user, err := service.UpdateProfile(context.Background(), 1, domain.Profile{Name: " Ann ", Username: "ann", Bio: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, "ann", user.Username)

	repo.EXPECT().UpdateProfile(gomock.Any(), 2, gomock.Any()).Return(nil, nil)
	_, err = service.UpdateProfile(context.Background(), 2, profile)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
