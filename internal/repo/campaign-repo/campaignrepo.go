package campaignrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const campaignColumns = "id, creator_id, name, description, budget, total_spent, status, thumbnail_url, link, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.CreatorID, &c.Name, &c.Description, &c.Budget, &c.TotalSpent,
		&c.Status, &c.ThumbnailURL, &c.Link, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Campaign, error) {
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("failed to scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	query := `
		INSERT INTO campaigns (creator_id, name, description, budget, status, thumbnail_url, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, total_spent, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, c.CreatorID, c.Name, c.Description, c.Budget, c.Status, c.ThumbnailURL, c.Link).
		Scan(&c.ID, &c.TotalSpent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := "SELECT " + campaignColumns + " FROM campaigns WHERE id = $1"
	c, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByCreatorID(ctx context.Context, creatorID int) ([]domain.Campaign, error) {
	query := "SELECT " + campaignColumns + " FROM campaigns WHERE creator_id = $1 ORDER BY created_at DESC, id DESC"
	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		zap.L().Error("failed to fetch creator campaigns", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) FindActive(ctx context.Context, limit, offset int) ([]domain.Campaign, error) {
	query := "SELECT " + campaignColumns + ` FROM campaigns
		WHERE status = 'active'
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch active campaigns", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM campaigns").Scan(&total); err != nil {
		zap.L().Error("failed to count campaigns", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) UpdateTotalSpent(ctx context.Context, id int, totalSpent decimal.Decimal) error {
	query := "UPDATE campaigns SET total_spent = $1, updated_at = NOW() WHERE id = $2"
	if _, err := r.db.Exec(ctx, query, totalSpent, id); err != nil {
		zap.L().Error("failed to update campaign spend", zap.Error(err))
		return err
	}
	return nil
}
