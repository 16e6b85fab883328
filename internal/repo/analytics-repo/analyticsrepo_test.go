package analyticsrepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var analyticsRowColumns = []string{
	"id", "campaign_id", "total_views", "total_likes", "total_shares", "total_clippers",
	"youtube_views", "instagram_views", "tiktok_views", "cpm", "demographics", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func emptyRow(id, campaignID int, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(analyticsRowColumns).
		AddRow(id, campaignID, int64(0), int64(0), int64(0), 0, int64(0), int64(0), int64(0),
			decimal.Zero, json.RawMessage(`{}`), now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "INSERT INTO campaign_analytics (campaign_id) VALUES ($1) RETURNING " + analyticsColumns

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(emptyRow(5, 1, now))
	a, err := repo.Create(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 5, a.ID)
	assert.Equal(t, json.RawMessage(`{}`), a.Demographics)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(2).WillReturnError(errors.New("boom"))
	a, err = repo.Create(context.Background(), 2)
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestRepository_FindByCampaignID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "SELECT " + analyticsColumns + " FROM campaign_analytics WHERE campaign_id = $1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(emptyRow(5, 1, now))
			},
		},
		{
			name: "Missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnError(errors.New("boom"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			a, err := repo.FindByCampaignID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectNil, a == nil)
		})
	}
}

func TestRepository_FindByCampaignIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	result, err := repo.FindByCampaignIDs(context.Background(), []int{})
	assert.NoError(t, err)
	assert.Empty(t, result)

	rows := emptyRow(5, 1, now).
		AddRow(6, 2, int64(10), int64(1), int64(0), 1, int64(10), int64(0), int64(0),
			decimal.Zero, json.RawMessage(`{}`), now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_analytics WHERE campaign_id = ANY($1)")).
		WithArgs([]int{1, 2}).
		WillReturnRows(rows)

	result, err = repo.FindByCampaignIDs(context.Background(), []int{1, 2})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(10), result[2].TotalViews)
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cpm := decimal.RequireFromString("2.5")
	demographics := json.RawMessage(`{"youtube":100}`)
	input := &domain.CampaignAnalytics{
		CampaignID: 1, TotalViews: 2000, TotalLikes: 20, TotalShares: 4, TotalClippers: 2,
		YoutubeViews: 2000, CPM: cpm, Demographics: demographics,
	}

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (campaign_id) DO UPDATE SET")).
		WithArgs(1, int64(2000), int64(20), int64(4), 2, int64(2000), int64(0), int64(0), cpm, demographics).
		WillReturnRows(pgxmock.NewRows(analyticsRowColumns).
			AddRow(5, 1, int64(2000), int64(20), int64(4), 2, int64(2000), int64(0), int64(0), cpm, demographics, now))

	saved, err := repo.Upsert(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, 5, saved.ID)
	assert.True(t, saved.CPM.Equal(cpm))

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (campaign_id)")).WillReturnError(errors.New("boom"))
	_, err = repo.Upsert(context.Background(), input)
	assert.Error(t, err)
}
