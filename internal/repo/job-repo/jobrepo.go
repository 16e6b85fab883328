package jobrepo

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

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	query := `
		SELECT id, title, description, reward, created_at
		FROM jobs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Reward, &j.CreatedAt); err != nil {
			zap.L().Error("failed to scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&total); err != nil {
		zap.L().Error("failed to count jobs", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	query := `
		INSERT INTO jobs (title, description, reward)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRow(ctx, query, j.Title, j.Description, j.Reward).Scan(&j.ID, &j.CreatedAt); err != nil {
		zap.L().Error("can't save job", zap.Error(err))
		return nil, err
	}
	return j, nil
}
