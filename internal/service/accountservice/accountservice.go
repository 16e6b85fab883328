package accountservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=accountservice.go -destination=mock_repo.go -package=accountservice
type Repo interface {
	FindActiveByUserID(ctx context.Context, userID int) ([]domain.ConnectedAccount, error)
	Upsert(ctx context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error)
	Deactivate(ctx context.Context, id, userID int) (bool, error)
}

type Service struct {
	repo  Repo
	newID func(platform domain.Platform) string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: mockAccountID,
	}
}

var (
	ErrAccountNotFound = errors.New("Connected account not found")
	ErrInvalidPlatform = errors.New("Invalid platform")
)

// mockAccountID stands in for the id a platform would return after OAuth.
func mockAccountID(platform domain.Platform) string {
	return string(platform) + "_" + uuid.NewString()
}

// GetConnectedAccounts returns the user's active connections.
func (s *Service) GetConnectedAccounts(ctx context.Context, userID int) ([]domain.ConnectedAccount, error) {
	accounts, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get connected accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// ConnectAccount links a platform account, reactivating an earlier link for
// the same platform. created is false when an existing link was updated.
func (s *Service) ConnectAccount(ctx context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error) {
	if !a.Platform.Valid() {
		return nil, false, ErrInvalidPlatform
	}
	if a.AccountID == "" {
		a.AccountID = s.newID(a.Platform)
	}
	saved, created, err := s.repo.Upsert(ctx, a)
	if err != nil {
		zap.L().Error("failed to connect account", zap.Error(err))
		return nil, false, err
	}
	zap.L().Info("account connected",
		zap.Int("userID", saved.UserID),
		zap.String("platform", string(saved.Platform)),
		zap.Bool("created", created),
	)
	return saved, created, nil
}

func (s *Service) DisconnectAccount(ctx context.Context, accountID, userID int) error {
	ok, err := s.repo.Deactivate(ctx, accountID, userID)
	if err != nil {
		zap.L().Error("failed to disconnect account", zap.Error(err))
		return err
	}
	if !ok {
		return ErrAccountNotFound
	}
	return nil
}

// GetAvailablePlatforms splits the supported platforms into those the user
// can still connect and those already connected.
func (s *Service) GetAvailablePlatforms(ctx context.Context, userID int) (*domain.PlatformAvailability, error) {
	accounts, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get connected accounts", zap.Error(err))
		return nil, err
	}
	connected := make(map[domain.Platform]bool, len(accounts))
	for _, a := range accounts {
		connected[a.Platform] = true
	}

	result := &domain.PlatformAvailability{
		Available: make([]domain.Platform, 0, len(domain.Platforms)),
		Connected: make([]domain.Platform, 0, len(accounts)),
	}
	for _, p := range domain.Platforms {
		if connected[p] {
			result.Connected = append(result.Connected, p)
		} else {
			result.Available = append(result.Available, p)
		}
	}
	return result, nil
}
