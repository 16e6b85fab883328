package analyticsrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const analyticsColumns = "id, campaign_id, total_views, total_likes, total_shares, total_clippers, " +
	"youtube_views, instagram_views, tiktok_views, cpm, demographics, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAnalytics(row pgx.Row) (*domain.CampaignAnalytics, error) {
	var a domain.CampaignAnalytics
	err := row.Scan(
		&a.ID, &a.CampaignID, &a.TotalViews, &a.TotalLikes, &a.TotalShares, &a.TotalClippers,
		&a.YoutubeViews, &a.InstagramViews, &a.TiktokViews, &a.CPM, &a.Demographics, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the zeroed analytics row every new campaign starts with.
func (r *Repository) Create(ctx context.Context, campaignID int) (*domain.CampaignAnalytics, error) {
	query := "INSERT INTO campaign_analytics (campaign_id) VALUES ($1) RETURNING " + analyticsColumns
	a, err := scanAnalytics(r.db.QueryRow(ctx, query, campaignID))
	if err != nil {
		zap.L().Error("can't create campaign analytics", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) FindByCampaignID(ctx context.Context, campaignID int) (*domain.CampaignAnalytics, error) {
	query := "SELECT " + analyticsColumns + " FROM campaign_analytics WHERE campaign_id = $1"
	a, err := scanAnalytics(r.db.QueryRow(ctx, query, campaignID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign analytics", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) FindByCampaignIDs(ctx context.Context, campaignIDs []int) (map[int]*domain.CampaignAnalytics, error) {
	result := make(map[int]*domain.CampaignAnalytics, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return result, nil
	}
	query := "SELECT " + analyticsColumns + " FROM campaign_analytics WHERE campaign_id = ANY($1)"
	rows, err := r.db.Query(ctx, query, campaignIDs)
	if err != nil {
		zap.L().Error("failed to fetch campaign analytics", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAnalytics(rows)
		if err != nil {
			zap.L().Error("failed to scan analytics row", zap.Error(err))
			return nil, err
		}
		result[a.CampaignID] = a
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate analytics", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *Repository) Upsert(ctx context.Context, a *domain.CampaignAnalytics) (*domain.CampaignAnalytics, error) {
	query := `
		INSERT INTO campaign_analytics (
			campaign_id, total_views, total_likes, total_shares, total_clippers,
			youtube_views, instagram_views, tiktok_views, cpm, demographics, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (campaign_id) DO UPDATE SET
			total_views = EXCLUDED.total_views,
			total_likes = EXCLUDED.total_likes,
			total_shares = EXCLUDED.total_shares,
			total_clippers = EXCLUDED.total_clippers,
			youtube_views = EXCLUDED.youtube_views,
			instagram_views = EXCLUDED.instagram_views,
			tiktok_views = EXCLUDED.tiktok_views,
			cpm = EXCLUDED.cpm,
			demographics = EXCLUDED.demographics,
			updated_at = NOW()
		RETURNING ` + analyticsColumns
	saved, err := scanAnalytics(r.db.QueryRow(ctx, query,
		a.CampaignID, a.TotalViews, a.TotalLikes, a.TotalShares, a.TotalClippers,
		a.YoutubeViews, a.InstagramViews, a.TiktokViews, a.CPM, a.Demographics,
	))
	if err != nil {
		zap.L().Error("can't save campaign analytics", zap.Error(err))
		return nil, err
	}
	return saved, nil
}
