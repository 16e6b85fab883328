package cliprepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const clipColumns = "id, campaign_id, clipper_id, title, platform, video_url, views, likes, shares, reward_earned, created_at, updated_at, stats_synced_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func collectClips(rows pgx.Rows) ([]domain.Clip, error) {
	defer rows.Close()

	clips := make([]domain.Clip, 0)
	for rows.Next() {
		var c domain.Clip
		err := rows.Scan(
			&c.ID, &c.CampaignID, &c.ClipperID, &c.Title, &c.Platform, &c.VideoURL,
			&c.Views, &c.Likes, &c.Shares, &c.RewardEarned, &c.CreatedAt, &c.UpdatedAt, &c.StatsSyncedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan clip row", zap.Error(err))
			return nil, err
		}
		clips = append(clips, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate clips", zap.Error(err))
		return nil, err
	}
	return clips, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Clip) (*domain.Clip, error) {
	query := `
		INSERT INTO clips (campaign_id, clipper_id, title, platform, video_url, views, likes, shares, reward_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.CampaignID, c.ClipperID, c.Title, c.Platform, c.VideoURL, c.Views, c.Likes, c.Shares, c.RewardEarned,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save clip", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// FindByCampaignID returns the campaign's clips ordered by views, most viewed first.
func (r *Repository) FindByCampaignID(ctx context.Context, campaignID int) ([]domain.Clip, error) {
	query := "SELECT " + clipColumns + " FROM clips WHERE campaign_id = $1 ORDER BY views DESC, id ASC"
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("failed to fetch campaign clips", zap.Error(err))
		return nil, err
	}
	return collectClips(rows)
}

// FindByCampaignIDBetween is FindByCampaignID restricted to clips created in [from, to].
func (r *Repository) FindByCampaignIDBetween(ctx context.Context, campaignID int, from, to time.Time) ([]domain.Clip, error) {
	query := "SELECT " + clipColumns + ` FROM clips
		WHERE campaign_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY views DESC, id ASC`
	rows, err := r.db.Query(ctx, query, campaignID, from, to)
	if err != nil {
		zap.L().Error("failed to fetch campaign clips in range", zap.Error(err))
		return nil, err
	}
	return collectClips(rows)
}

func (r *Repository) FindByCampaignIDs(ctx context.Context, campaignIDs []int) ([]domain.Clip, error) {
	if len(campaignIDs) == 0 {
		return []domain.Clip{}, nil
	}
	query := "SELECT " + clipColumns + " FROM clips WHERE campaign_id = ANY($1) ORDER BY campaign_id, id"
	rows, err := r.db.Query(ctx, query, campaignIDs)
	if err != nil {
		zap.L().Error("failed to fetch clips for campaigns", zap.Error(err))
		return nil, err
	}
	return collectClips(rows)
}

// FindForStatsSync returns up to limit clips, never-synced first, then the stalest.
func (r *Repository) FindForStatsSync(ctx context.Context, limit int) ([]domain.Clip, error) {
	query := "SELECT " + clipColumns + " FROM clips ORDER BY stats_synced_at ASC NULLS FIRST, id ASC LIMIT $1"
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch clips for sync", zap.Error(err))
		return nil, err
	}
	return collectClips(rows)
}

func (r *Repository) UpdateStats(ctx context.Context, clipID int, stats domain.ClipStats) error {
	query := `
		UPDATE clips
		SET views = $1, likes = $2, shares = $3, stats_synced_at = NOW(), updated_at = NOW()
		WHERE id = $4
	`
	if _, err := r.db.Exec(ctx, query, stats.Views, stats.Likes, stats.Shares, clipID); err != nil {
		zap.L().Error("failed to update clip stats", zap.Error(err))
		return err
	}
	return nil
}

// MarkSynced moves a clip to the back of the sync queue without touching its counters.
func (r *Repository) MarkSynced(ctx context.Context, clipID int) error {
	query := "UPDATE clips SET stats_synced_at = NOW() WHERE id = $1"
	if _, err := r.db.Exec(ctx, query, clipID); err != nil {
		zap.L().Error("failed to mark clip synced", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT c.clipper_id, u.name, COUNT(DISTINCT c.campaign_id), COALESCE(SUM(c.views), 0)::BIGINT AS views
		FROM clips c
		JOIN users u ON u.id = c.clipper_id
		GROUP BY c.clipper_id, u.name
		ORDER BY views DESC, c.clipper_id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Campaigns, &e.Views); err != nil {
			zap.L().Error("failed to scan leaderboard row", zap.Error(err))
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate leaderboard", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Totals returns the number of distinct clippers and their summed views.
func (r *Repository) Totals(ctx context.Context) (int, int64, error) {
	var clippers int
	var views int64
	query := "SELECT COUNT(DISTINCT clipper_id), COALESCE(SUM(views), 0)::BIGINT FROM clips"
	if err := r.db.QueryRow(ctx, query).Scan(&clippers, &views); err != nil {
		zap.L().Error("failed to fetch clip totals", zap.Error(err))
		return 0, 0, err
	}
	return clippers, views, nil
}
