package feedbackrepo

import (
	"context"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, f *domain.CampaignFeedback) (*domain.CampaignFeedback, error) {
	query := `
		INSERT INTO campaign_feedback (campaign_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, f.CampaignID, f.UserID, f.Rating, f.Comment).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		zap.L().Error("can't save campaign feedback", zap.Error(err))
		return nil, err
	}
	return f, nil
}

func (r *Repository) ListByCampaignID(ctx context.Context, campaignID int) ([]domain.CampaignFeedback, error) {
	query := `
		SELECT id, campaign_id, user_id, rating, comment, created_at
		FROM campaign_feedback
		WHERE campaign_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("failed to fetch campaign feedback", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	feedback := make([]domain.CampaignFeedback, 0)
	for rows.Next() {
		var f domain.CampaignFeedback
		if err := rows.Scan(&f.ID, &f.CampaignID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			zap.L().Error("failed to scan feedback row", zap.Error(err))
			return nil, err
		}
		feedback = append(feedback, f)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate feedback", zap.Error(err))
		return nil, err
	}
	return feedback, nil
}
