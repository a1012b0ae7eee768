package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/config"
	"github.com/GlebRadaev/gobank/internal/handlers"
	"github.com/GlebRadaev/gobank/internal/notify"
	"github.com/GlebRadaev/gobank/internal/pg"
	"github.com/GlebRadaev/gobank/internal/repo"
	"github.com/GlebRadaev/gobank/internal/service"
	"github.com/GlebRadaev/gobank/pkg/cache"
	"github.com/GlebRadaev/gobank/pkg/clients"
	"github.com/GlebRadaev/gobank/pkg/logger"
	"github.com/GlebRadaev/gobank/pkg/metrics"
)

const cachePrefix = "gobank:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notify.Service

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

	store, err := newCache(ctx, cfg)
	if err != nil {
		zap.L().Error("cache connection failed: ", zap.Error(err))
		return fmt.Errorf("can't connect cache: %w", err)
	}

	collector := metrics.New()

	conn := pg.New(pool)
	a.cfg = cfg
	a.notifier = notify.New(cfg, clients.NewHTTPClient(), collector)
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, service.Deps{
		TxManager:   txManager,
		Cache:       store,
		Notifier:    a.notifier,
		Metrics:     collector,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		SettingsTTL: cfg.SettingsCacheTTL,
	})
	a.api = handlers.New(a.srv)

	if err := a.bootstrapAdmin(ctx); err != nil {
		return fmt.Errorf("can't create administrator: %w", err)
	}

	a.startNotifier(ctx)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// newCache falls back to a process-local cache when no redis address is configured.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, using in-memory cache")
		return cache.NewMemoryCache(), nil
	}
	rdb, err := cache.Connect(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisCache(rdb, cachePrefix), nil
}

func (a *Application) bootstrapAdmin(ctx context.Context) error {
	if a.cfg.AdminUsername == "" || a.cfg.AdminPassword == "" {
		return nil
	}
	return a.srv.AdminBootstrap.EnsureAdmin(ctx, a.cfg.AdminUsername, a.cfg.AdminEmail, a.cfg.AdminPassword)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startNotifier(ctx context.Context) {
	a.notifier.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.notifier.Stopped()
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

	return appErr
}
