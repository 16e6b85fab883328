package feedbackrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "INSERT INTO campaign_feedback (campaign_id, user_id, rating, comment)"

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1, 2, 5, "great").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	f, err := repo.Create(context.Background(), &domain.CampaignFeedback{CampaignID: 1, UserID: 2, Rating: 5, Comment: "great"})
	assert.NoError(t, err)
	assert.Equal(t, 3, f.ID)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1, 2, 4, "").WillReturnError(errors.New("boom"))
	f, err = repo.Create(context.Background(), &domain.CampaignFeedback{CampaignID: 1, UserID: 2, Rating: 4})
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestRepository_ListByCampaignID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "FROM campaign_feedback WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC"

	rows := pgxmock.NewRows([]string{"id", "campaign_id", "user_id", "rating", "comment", "created_at"}).
		AddRow(2, 1, 3, 4, "ok", now).
		AddRow(1, 1, 2, 5, "great", now)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(rows)

	list, err := repo.ListByCampaignID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 4, list[0].Rating)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(2).WillReturnError(errors.New("boom"))
	_, err = repo.ListByCampaignID(context.Background(), 2)
	assert.Error(t, err)
}
