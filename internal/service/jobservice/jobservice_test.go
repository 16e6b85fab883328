package jobservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/clippa/internal/cache"
	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jobCache := NewMockCache(ctrl)
	service := New(repo, jobCache, 30*time.Second)
	defer ctrl.Finish()
	return service, repo, jobCache
}

func TestListJobs(t *testing.T) {
	service, repo, jobCache := NewMock(t)
	jobs := []domain.Job{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}
	cached := &domain.JobPage{Items: jobs, Total: 2, Page: 1, Limit: 12, TotalPages: 1}

	tests := []struct {
		name          string
		page, limit   int
		prepareMock   func()
		expected      *domain.JobPage
		expectedError bool
	}{
		{
			name:  "Served from cache",
			page:  1,
			limit: 12,
			prepareMock: func() {
				jobCache.EXPECT().Get(gomock.Any(), "1:12").Return(cached, true)
			},
			expected: cached,
		},
		{
			name:  "Loaded and cached on miss",
			page:  2,
			limit: 1,
			prepareMock: func() {
				jobCache.EXPECT().Get(gomock.Any(), "2:1").Return(nil, false)
				repo.EXPECT().List(gomock.Any(), 1, 1).Return(jobs[1:], nil)
				repo.EXPECT().Count(gomock.Any()).Return(2, nil)
				jobCache.EXPECT().Set(gomock.Any(), "2:1", gomock.Any())
			},
			expected: &domain.JobPage{Items: jobs[1:], Total: 2, Page: 2, Limit: 1, TotalPages: 2},
		},
		{
			name:  "Defaults applied",
			page:  0,
			limit: 0,
			prepareMock: func() {
				jobCache.EXPECT().Get(gomock.Any(), "1:12").Return(nil, false)
				repo.EXPECT().List(gomock.Any(), DefaultLimit, 0).Return([]domain.Job{}, nil)
				repo.EXPECT().Count(gomock.Any()).Return(0, nil)
				jobCache.EXPECT().Set(gomock.Any(), "1:12", gomock.Any())
			},
			expected: &domain.JobPage{Items: []domain.Job{}, Total: 0, Page: 1, Limit: 12, TotalPages: 0},
		},
		{
			name:  "Limit capped",
			page:  1,
			limit: 1000,
			prepareMock: func() {
				jobCache.EXPECT().Get(gomock.Any(), "1:100").Return(nil, false)
				repo.EXPECT().List(gomock.Any(), MaxLimit, 0).Return(nil, errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.ListJobs(context.Background(), tt.page, tt.limit)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestListJobs_CollapsesConcurrentMisses(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, cache.NewMemory[*domain.JobPage](time.Minute), time.Minute)

	release := make(chan struct{})
	repo.EXPECT().List(gomock.Any(), DefaultLimit, 0).DoAndReturn(func(context.Context, int, int) ([]domain.Job, error) {
		<-release
		return []domain.Job{{ID: 1}}, nil
	}).Times(1)
	repo.EXPECT().Count(gomock.Any()).Return(1, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]*domain.JobPage, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := service.ListJobs(context.Background(), 1, DefaultLimit)
			assert.NoError(t, err)
			results[i] = page
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, page := range results {
		require.NotNil(t, page)
		assert.Equal(t, 1, page.Total)
	}
}

func TestListJobs_CanceledCallerDoesNotFailWaiters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, cache.NewMemory[*domain.JobPage](time.Minute), time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().List(gomock.Any(), DefaultLimit, 0).DoAndReturn(func(ctx context.Context, _, _ int) ([]domain.Job, error) {
		close(started)
		<-release
		assert.NoError(t, ctx.Err())
		return []domain.Job{{ID: 1}}, nil
	}).Times(1)
	repo.EXPECT().Count(gomock.Any()).Return(1, nil).Times(1)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := service.ListJobs(firstCtx, 1, DefaultLimit)
		firstErr <- err
	}()
	<-started

	type result struct {
		page *domain.JobPage
		err  error
	}
	second := make(chan result, 1)
	go func() {
		page, err := service.ListJobs(context.Background(), 1, DefaultLimit)
		second <- result{page, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.page.Total)
}

func TestListJobs_LoadOverlappingCreateIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	jobCache := cache.NewMemory[*domain.JobPage](time.Minute)
	service := New(repo, jobCache, time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().List(gomock.Any(), DefaultLimit, 0).DoAndReturn(func(context.Context, int, int) ([]domain.Job, error) {
		close(started)
		<-release
		return []domain.Job{}, nil
	}).Times(1)
	repo.EXPECT().Count(gomock.Any()).Return(0, nil).Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j *domain.Job) (*domain.Job, error) {
		j.ID = 1
		return j, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := service.ListJobs(context.Background(), 1, DefaultLimit)
		done <- err
	}()
	<-started

	_, err := service.CreateJob(context.Background(), &domain.Job{Title: "Edit"})
	require.NoError(t, err)
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 0, jobCache.Len())
}

func TestCreateJob(t *testing.T) {
	service, repo, jobCache := NewMock(t)

	tests := []struct {
		name          string
		job           *domain.Job
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Created and cache purged",
			job:  &domain.Job{Title: " Edit ", Reward: decimal.RequireFromString("10")},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j *domain.Job) (*domain.Job, error) {
					assert.Equal(t, "Edit", j.Title)
					j.ID = 1
					return j, nil
				})
				jobCache.EXPECT().Purge(gomock.Any())
			},
		},
		{
			name:          "Missing title",
			job:           &domain.Job{Reward: decimal.Zero},
			prepareMock:   func() {},
			expectedError: ErrTitleRequired,
		},
		{
			name:          "Negative reward",
			job:           &domain.Job{Title: "Edit", Reward: decimal.NewFromInt(-1)},
			prepareMock:   func() {},
			expectedError: ErrInvalidReward,
		},
		{
			name: "Repository error leaves cache alone",
			job:  &domain.Job{Title: "Edit"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.CreateJob(context.Background(), tt.job)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, created.ID)
		})
	}
}

func TestCacheTTL(t *testing.T) {
	service, _, _ := NewMock(t)
	assert.Equal(t, 30*time.Second, service.CacheTTL())
}
