// Package main News Press API
// @title News Press API
// @version 1.0
// @description Articles with markdown rendering, engagement, threaded comments and aggregate stats
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/news-press/internal/api/docs"
	"github.com/DjordjeVuckovic/news-press/internal/api/router"
	"github.com/DjordjeVuckovic/news-press/internal/api/server"
	"github.com/DjordjeVuckovic/news-press/internal/detach"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/metrics"
	"github.com/DjordjeVuckovic/news-press/internal/service"
	"github.com/DjordjeVuckovic/news-press/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-press/internal/text"
	pkgserver "github.com/DjordjeVuckovic/news-press/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	setupLogger()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	backend, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to open storage", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	publisher, err := events.NewPublisher(ctx, cfg.EventsConfig)
	if err != nil {
		slog.Error("Failed to create event publisher", "type", cfg.EventsConfig.Type, "error", err)
		os.Exit(1)
	}

	indexer, err := factory.NewIndexer(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create search indexer", "error", err)
		os.Exit(1)
	}
	if indexer == nil {
		slog.Info("Search indexing disabled")
	}

	checkers := []pkgserver.HealthChecker{backend.Health}
	if hc, ok := publisher.(pkgserver.HealthChecker); ok {
		checkers = append(checkers, hc)
	}

	m := metrics.New()
	svc := service.New(backend.Store, publisher,
		service.WithMetrics(m),
		service.WithTopic(cfg.EventsConfig.Topic),
		service.WithIndexer(indexer),
		service.WithTagLimits(cfg.Content.TagLimits()),
		service.WithPipeline(text.NewPipeline(cfg.Content.TextConfig())),
		service.WithDetacher(detach.New(
			detach.WithTimeout(cfg.Content.DetachedTimeout),
			detach.WithMetrics(m),
		)),
	)

	s := server.New(sCfg, checkers...).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupValidator().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics", m.Handler()).
		SetupOpenApi("/swagger/*").
		OnShutdown(svc.Wait).
		OnShutdown(func(context.Context) error { return publisher.Close() })

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Press API is running")
	})

	router.NewArticleRouter(s.Echo, svc).Bind()
	router.NewStatsRouter(s.Echo, svc).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining detached tasks...")
	}()

	slog.Info("Starting News Press API", "port", sCfg.Port, "storage", cfg.StorageConfig.Type, "events", cfg.EventsConfig.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
