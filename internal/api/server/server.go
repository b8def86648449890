package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	mw "github.com/DjordjeVuckovic/news-press/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/news-press/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// ShutdownHook runs after the HTTP listener stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

type Server struct {
	Echo *echo.Echo

	cfg      *Config
	health   pkgserver.All
	quiet    map[string]bool
	hooks    []ShutdownHook

	ctx      context.Context
	cancel   context.CancelFunc
	shutdown chan struct{}
}

func New(cfg *Config, checkers ...pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		Echo:     e,
		cfg:      cfg,
		health:   checkers,
		quiet:    make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
		shutdown: make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return s.quiet[c.Path()]
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupValidator() *Server {
	s.Echo.Validator = NewRequestValidator()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.quiet[path] = true
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.health.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

func (s *Server) SetupMetrics(path string, h http.Handler) *Server {
	s.quiet[path] = true
	s.Echo.GET(path, echo.WrapHandler(h))
	return s
}

// OnShutdown registers hooks run in registration order during Start's shutdown.
func (s *Server) OnShutdown(hook ShutdownHook) *Server {
	s.hooks = append(s.hooks, hook)
	return s
}

// Context is cancelled once shutdown begins.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", startErr)
	}

	close(s.shutdown)
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down HTTP server", "error", err)
		return err
	}
	for _, hook := range s.hooks {
		if err := hook(shutdownCtx); err != nil {
			slog.Error("Shutdown hook failed", "error", err)
		}
	}

	slog.Info("Server stopped")
	return startErr
}
