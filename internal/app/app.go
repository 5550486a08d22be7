package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/data/db"
	httpx "github.com/yungbote/workforce-analytics-backend/internal/http"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      *config.Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	store        *db.Service
	server       *httpx.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Configuration loaded", "env", cfg.Env, "store_driver", cfg.Store.Driver, "http_addr", cfg.HTTP.Addr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel, cfg.Env)

	store, err := db.New(cfg.Store, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("store automigrate: %w", err)
	}
	theDB := store.DB()

	clients := wireClients(log, cfg)
	reposet := wireRepos(theDB, log, cfg.Store.BatchSize)
	serviceset := wireServices(theDB, log, cfg, reposet, clients)

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	handlerset := wireHandlers(log, serviceset, clients, metrics)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Clients:      clients,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		store:        store,
		server:       httpx.NewServer(cfg.HTTP, router),
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("Server listening", "addr", a.server.Addr())
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if a.Clients.Cache != nil {
		errs = append(errs, a.Clients.Cache.Close())
	}
	if a.Clients.Neo4j != nil {
		errs = append(errs, a.Clients.Neo4j.Close(ctx))
	}
	if a.otelShutdown != nil {
		errs = append(errs, a.otelShutdown(ctx))
	}
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if err := errors.Join(errs...); err != nil && a.Log != nil {
		a.Log.Warn("Shutdown cleanup reported errors", "error", err)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
