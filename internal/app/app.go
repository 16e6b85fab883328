package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/clippa/internal/cache"
	"github.com/GlebRadaev/clippa/internal/clipstats"
	"github.com/GlebRadaev/clippa/internal/config"
	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/handlers"
	"github.com/GlebRadaev/clippa/internal/pg"
	"github.com/GlebRadaev/clippa/internal/repo"
	"github.com/GlebRadaev/clippa/internal/service"
	"github.com/GlebRadaev/clippa/internal/service/jobservice"
	"github.com/GlebRadaev/clippa/pkg/clients"
	"github.com/GlebRadaev/clippa/pkg/logger"
)

const jobsCachePrefix = "clippa:jobs:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	stats *clipstats.Service

	pool  *pgxpool.Pool
	redis *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	decimal.MarshalJSONWithoutQuotes = true

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, a.jobsCache(ctx))
	a.api = handlers.New(a.srv, cfg)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startClipStatsSync(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	cfgpool.MaxConns = 20
	cfgpool.MaxConnIdleTime = 5 * time.Minute
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// jobsCache prefers redis so replicas share the job list, and falls back to
// process memory when redis is not configured or not reachable.
func (a *Application) jobsCache(ctx context.Context) jobservice.Cache {
	if a.cfg.RedisAddr == "" {
		return cache.NewMemory[*domain.JobPage](a.cfg.JobsCacheTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, using in-memory jobs cache", zap.String("addr", a.cfg.RedisAddr), zap.Error(err))
		client.Close()
		return cache.NewMemory[*domain.JobPage](a.cfg.JobsCacheTTL)
	}

	a.redis = client
	zap.L().Info("jobs cache backed by redis", zap.String("addr", a.cfg.RedisAddr))
	return cache.NewRedis[*domain.JobPage](client, jobsCachePrefix, a.cfg.JobsCacheTTL)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startClipStatsSync(ctx context.Context) {
	if a.cfg.StatsAddress == "" {
		zap.L().Info("clip stats address not set, sync disabled")
		return
	}
	a.stats = clipstats.New(a.cfg, a.repo.ClipStatsRepo, a.srv.CampaignService, clients.NewHTTPClient())

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.stats.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()

	return appErr
}

func (a *Application) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
