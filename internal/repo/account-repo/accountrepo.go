package accountrepo

import (
	"context"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const accountColumns = "id, user_id, platform, username, account_id, access_token, refresh_token, is_active, connected_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row, extra ...any) (*domain.ConnectedAccount, error) {
	var a domain.ConnectedAccount
	dest := []any{
		&a.ID, &a.UserID, &a.Platform, &a.Username, &a.AccountID,
		&a.AccessToken, &a.RefreshToken, &a.IsActive, &a.ConnectedAt, &a.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) ([]domain.ConnectedAccount, error) {
	query := "SELECT " + accountColumns + " FROM connected_accounts WHERE user_id = $1 AND is_active = TRUE ORDER BY connected_at ASC, id ASC"
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch connected accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.ConnectedAccount, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan connected account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate connected accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// Upsert connects the platform for the user, reactivating and overwriting a
// previous connection for the same (user, platform) pair. created reports
// whether a new row was inserted.
func (r *Repository) Upsert(ctx context.Context, a *domain.ConnectedAccount) (*domain.ConnectedAccount, bool, error) {
	query := `
		INSERT INTO connected_accounts (user_id, platform, username, account_id, access_token, refresh_token, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			username = EXCLUDED.username,
			account_id = EXCLUDED.account_id,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			is_active = TRUE,
			updated_at = NOW()
		RETURNING ` + accountColumns + `, (xmax = 0) AS inserted`
	var created bool
	saved, err := scanAccount(
		r.db.QueryRow(ctx, query, a.UserID, a.Platform, a.Username, a.AccountID, a.AccessToken, a.RefreshToken),
		&created,
	)
	if err != nil {
		zap.L().Error("can't save connected account", zap.Error(err))
		return nil, false, err
	}
	return saved, created, nil
}

// Deactivate soft-deletes the account. It reports false when no account with
// that id belongs to the user.
func (r *Repository) Deactivate(ctx context.Context, id, userID int) (bool, error) {
	query := "UPDATE connected_accounts SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND user_id = $2"
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to deactivate connected account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
