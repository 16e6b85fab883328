package clipstats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/clippa/internal/config"
	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/monitoring"
	"github.com/GlebRadaev/clippa/pkg/clients"
)

const (
	maxRetries     = 3
	retryInterval  = time.Second
	defaultBatch   = 100
	defaultWorkers = 10
)

const (
	resultUpdated = "updated"
	resultPending = "pending"
	resultFailed  = "failed"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// Response is what the stats system returns for GET /api/clips/{id}.
type Response struct {
	ClipID int   `json:"clipId"`
	Views  int64 `json:"views"`
	Likes  int64 `json:"likes"`
	Shares int64 `json:"shares"`
}

//go:generate mockgen -source=clipstats.go -destination=mock_clipstats.go -package=clipstats
type ClipRepo interface {
	FindForStatsSync(ctx context.Context, limit int) ([]domain.Clip, error)
	UpdateStats(ctx context.Context, clipID int, stats domain.ClipStats) error
	MarkSynced(ctx context.Context, clipID int) error
}

type AnalyticsUpdater interface {
	UpdateCampaignAnalytics(ctx context.Context, id int) (*domain.CampaignAnalytics, error)
}

type Service struct {
	url            string
	clipRepo       ClipRepo
	analytics      AnalyticsUpdater
	client         clients.HTTPClientI
	limit          int
	workerPool     WorkerPoolI
	updateInterval time.Duration
	retryInterval  time.Duration
	inFlight       sync.Map
	metrics        *monitoring.Metrics
}

func New(cfg *config.Config, clipRepo ClipRepo, analytics AnalyticsUpdater, client clients.HTTPClientI) *Service {
	interval := cfg.StatsSyncInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Service{
		url:            cfg.StatsAddress,
		clipRepo:       clipRepo,
		analytics:      analytics,
		client:         client,
		limit:          defaultBatch,
		workerPool:     NewWorkerPool(defaultWorkers),
		updateInterval: interval,
		retryInterval:  retryInterval,
		metrics:        monitoring.Init(),
	}
}

// Start blocks until ctx is canceled, syncing a batch of clips every interval.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("clip stats sync started", zap.String("url", s.url), zap.Duration("interval", s.updateInterval))
	s.run(ctx)
	s.workerPool.Close()
	zap.L().Info("clip stats sync stopped")
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncClips(ctx)
		}
	}
}

func (s *Service) syncClips(ctx context.Context) {
	clips, err := s.clipRepo.FindForStatsSync(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch clips for stats sync", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, clip := range clips {
		clip := clip

		if _, loaded := s.inFlight.LoadOrStore(clip.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(clip.ID)
				return s.handleClip(ctx, clip)
			})
			if err != nil {
				s.inFlight.Delete(clip.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to schedule clip stats sync", zap.Error(err))
	}
}

func (s *Service) handleClip(ctx context.Context, clip domain.Clip) error {
	url := s.url + "/api/clips/" + strconv.Itoa(clip.ID)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(ctx, url, nil)
		if err != nil {
			lastErr = err
			if waitErr := s.wait(ctx, s.backoff(attempt)); waitErr != nil {
				return waitErr
			}
			continue
		}

		switch statusCode {
		case http.StatusOK:
			if err := s.applyStats(ctx, clip, respBody); err != nil {
				return s.giveUp(ctx, clip.ID, err)
			}
			s.metrics.ClipStatsSyncs.WithLabelValues(resultUpdated).Inc()
			return nil
		case http.StatusNoContent:
			s.metrics.ClipStatsSyncs.WithLabelValues(resultPending).Inc()
			zap.L().Debug("clip stats not known yet", zap.Int("clipID", clip.ID))
			return s.clipRepo.MarkSynced(ctx, clip.ID)
		case http.StatusTooManyRequests:
			retryAfter := s.retryAfter(respHeaders, attempt)
			zap.L().Warn("stats system rate limit, retrying",
				zap.Int("clipID", clip.ID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			lastErr = fmt.Errorf("rate limited: %w", ErrUnexpectedStatus)
			if waitErr := s.wait(ctx, retryAfter); waitErr != nil {
				return waitErr
			}
		default:
			zap.L().Error("unexpected status from stats system", zap.Int("status", statusCode), zap.Int("clipID", clip.ID))
			return s.giveUp(ctx, clip.ID, fmt.Errorf("clip %d: status %d: %w", clip.ID, statusCode, ErrUnexpectedStatus))
		}
	}

	return s.giveUp(ctx, clip.ID, fmt.Errorf("failed to sync clip %d after %d retries: %w", clip.ID, maxRetries, lastErr))
}

// giveUp stamps a failed clip as checked so it moves behind the rest of the
// queue. Otherwise clips that always fail would fill every batch.
func (s *Service) giveUp(ctx context.Context, clipID int, cause error) error {
	s.metrics.ClipStatsSyncs.WithLabelValues(resultFailed).Inc()
	if err := s.clipRepo.MarkSynced(ctx, clipID); err != nil {
		return errors.Join(cause, fmt.Errorf("failed to mark clip %d: %w", clipID, err))
	}
	return cause
}

func (s *Service) applyStats(ctx context.Context, clip domain.Clip, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse stats response: %w", err)
	}
	if response.ClipID != 0 && response.ClipID != clip.ID {
		return fmt.Errorf("clip id mismatch: expected %d, got %d", clip.ID, response.ClipID)
	}
	if response.Views < 0 || response.Likes < 0 || response.Shares < 0 {
		return fmt.Errorf("negative counters for clip %d", clip.ID)
	}

	stats := domain.ClipStats{Views: response.Views, Likes: response.Likes, Shares: response.Shares}
	if err := s.clipRepo.UpdateStats(ctx, clip.ID, stats); err != nil {
		return fmt.Errorf("failed to update clip stats: %w", err)
	}
	if _, err := s.analytics.UpdateCampaignAnalytics(ctx, clip.CampaignID); err != nil {
		return fmt.Errorf("failed to recompute analytics for campaign %d: %w", clip.CampaignID, err)
	}

	zap.L().Info("clip stats synced",
		zap.Int("clipID", clip.ID),
		zap.Int64("views", stats.Views),
		zap.Int64("likes", stats.Likes),
		zap.Int64("shares", stats.Shares),
	)
	return nil
}

func (s *Service) backoff(attempt int) time.Duration {
	return s.retryInterval * time.Duration(attempt)
}

func (s *Service) retryAfter(headers http.Header, attempt int) time.Duration {
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return s.backoff(attempt)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
