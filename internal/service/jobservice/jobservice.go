package jobservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/monitoring"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100

	cacheName = "jobs"
)

//go:generate mockgen -source=jobservice.go -destination=mock_repo.go -package=jobservice
type Repo interface {
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (*domain.JobPage, bool)
	Set(ctx context.Context, key string, page *domain.JobPage)
	Purge(ctx context.Context)
}

type Service struct {
	repo    Repo
	cache   Cache
	ttl     time.Duration
	group   singleflight.Group
	metrics *monitoring.Metrics

	// generation is bumped on every purge; a load that overlapped a purge
	// does not write its page back.
	generation atomic.Uint64
}

func New(repo Repo, cache Cache, ttl time.Duration) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		ttl:     ttl,
		metrics: monitoring.Init(),
	}
}

var (
	ErrTitleRequired = errors.New("Job title is required")
	ErrInvalidReward = errors.New("Reward must not be negative")
)

// CacheTTL is how long a listed page may be served from cache.
func (s *Service) CacheTTL() time.Duration {
	return s.ttl
}

// ListJobs returns one page of jobs, newest first. Pages are cached per
// page and limit, and concurrent misses for the same page share one load.
func (s *Service) ListJobs(ctx context.Context, page, limit int) (*domain.JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	key := fmt.Sprintf("%d:%d", page, limit)

	if cached, ok := s.cache.Get(ctx, key); ok {
		s.metrics.CacheHits.WithLabelValues(cacheName).Inc()
		return cached, nil
	}
	s.metrics.CacheMisses.WithLabelValues(cacheName).Inc()

	// The shared load outlives any single caller; each caller stops waiting
	// on its own context.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		generation := s.generation.Load()
		result, err := s.load(loadCtx, page, limit)
		if err != nil {
			return nil, err
		}
		if s.generation.Load() == generation {
			s.cache.Set(loadCtx, key, result)
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			zap.L().Error("failed to list jobs", zap.Error(res.Err))
			return nil, res.Err
		}
		return res.Val.(*domain.JobPage), nil
	}
}

func (s *Service) load(ctx context.Context, page, limit int) (*domain.JobPage, error) {
	jobs, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.JobPage{
		Items:      jobs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// CreateJob stores a job and drops every cached page.
func (s *Service) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return nil, ErrTitleRequired
	}
	if job.Reward.IsNegative() {
		return nil, ErrInvalidReward
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		zap.L().Error("failed to create job", zap.Error(err))
		return nil, err
	}
	s.generation.Add(1)
	s.cache.Purge(ctx)
	zap.L().Info("job created", zap.Int("jobID", created.ID))
	return created, nil
}
