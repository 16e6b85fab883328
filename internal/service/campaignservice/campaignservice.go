package campaignservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DefaultLeaderboard = 10
)

//go:generate mockgen -source=campaignservice.go -destination=mock_repo.go -package=campaignservice
type CampaignRepo interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	FindByCreatorID(ctx context.Context, creatorID int) ([]domain.Campaign, error)
	FindActive(ctx context.Context, limit, offset int) ([]domain.Campaign, error)
	Count(ctx context.Context) (int, error)
	UpdateTotalSpent(ctx context.Context, id int, totalSpent decimal.Decimal) error
}

type ClipRepo interface {
	Create(ctx context.Context, c *domain.Clip) (*domain.Clip, error)
	FindByCampaignID(ctx context.Context, campaignID int) ([]domain.Clip, error)
	FindByCampaignIDBetween(ctx context.Context, campaignID int, from, to time.Time) ([]domain.Clip, error)
	FindByCampaignIDs(ctx context.Context, campaignIDs []int) ([]domain.Clip, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Totals(ctx context.Context) (int, int64, error)
}

type AnalyticsRepo interface {
	Create(ctx context.Context, campaignID int) (*domain.CampaignAnalytics, error)
	FindByCampaignID(ctx context.Context, campaignID int) (*domain.CampaignAnalytics, error)
	FindByCampaignIDs(ctx context.Context, campaignIDs []int) (map[int]*domain.CampaignAnalytics, error)
	Upsert(ctx context.Context, a *domain.CampaignAnalytics) (*domain.CampaignAnalytics, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.CampaignFeedback) (*domain.CampaignFeedback, error)
	ListByCampaignID(ctx context.Context, campaignID int) ([]domain.CampaignFeedback, error)
}

type Service struct {
	campaignRepo  CampaignRepo
	clipRepo      ClipRepo
	analyticsRepo AnalyticsRepo
	feedbackRepo  FeedbackRepo
	txManager     pg.TXManager
}

func New(campaignRepo CampaignRepo, clipRepo ClipRepo, analyticsRepo AnalyticsRepo, feedbackRepo FeedbackRepo, txManager pg.TXManager) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		clipRepo:      clipRepo,
		analyticsRepo: analyticsRepo,
		feedbackRepo:  feedbackRepo,
		txManager:     txManager,
	}
}

var (
	ErrCampaignNotFound = errors.New("Campaign not found")
	ErrNameRequired     = errors.New("Campaign name is required")
	ErrInvalidBudget    = errors.New("Budget must be greater than 0")
	ErrInvalidPlatform  = errors.New("Invalid platform")
	ErrVideoURLRequired = errors.New("Video URL is required")
	ErrNegativeCounters = errors.New("Views, likes, shares and reward must not be negative")
	ErrInvalidDateRange = errors.New("Start date must not be after end date")
	ErrInvalidRating    = errors.New("Rating must be between 1 and 5")
)

// ListCampaigns pages through active campaigns, newest first, with analytics attached.
func (s *Service) ListCampaigns(ctx context.Context, page, limit int) ([]domain.Campaign, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	campaigns, err := s.campaignRepo.FindActive(ctx, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to list campaigns", zap.Error(err))
		return nil, err
	}
	if err := s.attachAnalytics(ctx, campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetCampaigns returns a creator's campaigns with analytics and clips.
func (s *Service) GetCampaigns(ctx context.Context, creatorID int) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.FindByCreatorID(ctx, creatorID)
	if err != nil {
		zap.L().Error("failed to get creator campaigns", zap.Error(err))
		return nil, err
	}
	if err := s.attachAnalytics(ctx, campaigns); err != nil {
		return nil, err
	}

	clips, err := s.clipRepo.FindByCampaignIDs(ctx, campaignIDs(campaigns))
	if err != nil {
		zap.L().Error("failed to get campaign clips", zap.Error(err))
		return nil, err
	}
	byCampaign := make(map[int][]domain.Clip, len(campaigns))
	for _, c := range clips {
		byCampaign[c.CampaignID] = append(byCampaign[c.CampaignID], c)
	}
	for i := range campaigns {
		campaigns[i].Clips = byCampaign[campaigns[i].ID]
		if campaigns[i].Clips == nil {
			campaigns[i].Clips = []domain.Clip{}
		}
	}
	return campaigns, nil
}

// GetCampaignByID loads one campaign with analytics, clips (optionally
// restricted to a creation window) and its top clippers.
func (s *Service) GetCampaignByID(ctx context.Context, id int, from, to *time.Time) (*domain.CampaignDetails, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidDateRange
	}
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	analytics, err := s.analyticsRepo.FindByCampaignID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign analytics", zap.Error(err))
		return nil, err
	}
	campaign.Analytics = analytics

	var clips []domain.Clip
	if from != nil && to != nil {
		clips, err = s.clipRepo.FindByCampaignIDBetween(ctx, id, *from, *to)
	} else {
		clips, err = s.clipRepo.FindByCampaignID(ctx, id)
	}
	if err != nil {
		zap.L().Error("failed to get campaign clips", zap.Error(err))
		return nil, err
	}
	campaign.Clips = clips

	return &domain.CampaignDetails{
		Campaign:         *campaign,
		FeaturedClippers: FeaturedClippers(clips, FeaturedClippersLimit),
	}, nil
}

// CreateCampaign stores the campaign and its empty analytics row atomically.
func (s *Service) CreateCampaign(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, ErrNameRequired
	}
	if !c.Budget.IsPositive() {
		return nil, ErrInvalidBudget
	}
	c.Status = domain.CampaignActive

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.campaignRepo.Create(ctx, c)
		if err != nil {
			return err
		}
		analytics, err := s.analyticsRepo.Create(ctx, created.ID)
		if err != nil {
			return err
		}
		created.Analytics = analytics
		c = created
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create campaign", zap.Error(err))
		return nil, err
	}
	zap.L().Info("campaign created", zap.Int("campaignID", c.ID), zap.Int("creatorID", c.CreatorID))
	return c, nil
}

func (s *Service) AddClip(ctx context.Context, clip *domain.Clip) (*domain.Clip, error) {
	if !clip.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}
	if strings.TrimSpace(clip.VideoURL) == "" {
		return nil, ErrVideoURLRequired
	}
	if clip.Views < 0 || clip.Likes < 0 || clip.Shares < 0 || clip.RewardEarned.IsNegative() {
		return nil, ErrNegativeCounters
	}
	campaign, err := s.campaignRepo.FindByID(ctx, clip.CampaignID)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	created, err := s.clipRepo.Create(ctx, clip)
	if err != nil {
		zap.L().Error("failed to add clip", zap.Error(err))
		return nil, err
	}
	zap.L().Info("clip added", zap.Int("clipID", created.ID), zap.Int("campaignID", created.CampaignID))
	return created, nil
}

// UpdateCampaignAnalytics recomputes the campaign's analytics from its clips
// and stores them together with the campaign's total spend.
func (s *Service) UpdateCampaignAnalytics(ctx context.Context, id int) (*domain.CampaignAnalytics, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	var saved *domain.CampaignAnalytics
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		clips, err := s.clipRepo.FindByCampaignID(ctx, id)
		if err != nil {
			return err
		}
		analytics, spent := ComputeAnalytics(id, clips)
		saved, err = s.analyticsRepo.Upsert(ctx, analytics)
		if err != nil {
			return err
		}
		return s.campaignRepo.UpdateTotalSpent(ctx, id, spent)
	})
	if err != nil {
		zap.L().Error("failed to update campaign analytics", zap.Int("campaignID", id), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *Service) AddFeedback(ctx context.Context, f *domain.CampaignFeedback) (*domain.CampaignFeedback, error) {
	if f.Rating < 1 || f.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if err := s.ensureCampaign(ctx, f.CampaignID); err != nil {
		return nil, err
	}
	created, err := s.feedbackRepo.Create(ctx, f)
	if err != nil {
		zap.L().Error("failed to add feedback", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListFeedback(ctx context.Context, campaignID int) ([]domain.CampaignFeedback, error) {
	if err := s.ensureCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	feedback, err := s.feedbackRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		zap.L().Error("failed to list feedback", zap.Error(err))
		return nil, err
	}
	return feedback, nil
}

// Leaderboard ranks clippers by total views across all campaigns.
func (s *Service) Leaderboard(ctx context.Context, limit int) (*domain.Leaderboard, error) {
	if limit < 1 {
		limit = DefaultLeaderboard
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	top, err := s.clipRepo.Leaderboard(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.Error(err))
		return nil, err
	}
	clippers, views, err := s.clipRepo.Totals(ctx)
	if err != nil {
		zap.L().Error("failed to get clip totals", zap.Error(err))
		return nil, err
	}
	campaigns, err := s.campaignRepo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count campaigns", zap.Error(err))
		return nil, err
	}
	return &domain.Leaderboard{
		TotalClippers:  clippers,
		TotalViews:     views,
		TotalCampaigns: campaigns,
		Top:            top,
	}, nil
}

func (s *Service) ensureCampaign(ctx context.Context, id int) error {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	return nil
}

func (s *Service) attachAnalytics(ctx context.Context, campaigns []domain.Campaign) error {
	analytics, err := s.analyticsRepo.FindByCampaignIDs(ctx, campaignIDs(campaigns))
	if err != nil {
		zap.L().Error("failed to get campaign analytics", zap.Error(err))
		return err
	}
	for i := range campaigns {
		campaigns[i].Analytics = analytics[campaigns[i].ID]
	}
	return nil
}

func campaignIDs(campaigns []domain.Campaign) []int {
	ids := make([]int, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	return ids
}
