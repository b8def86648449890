package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-press/internal/metrics"
	pkgserver "github.com/DjordjeVuckovic/news-press/pkg/server"
	"github.com/stretchr/testify/assert"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func serve(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_HealthChecks(t *testing.T) {
	cfg := &Config{Port: "8080", CorsOrigins: []string{"*"}}

	tests := []struct {
		name     string
		checkers []pkgserver.HealthChecker
		want     int
	}{
		{name: "no checkers", want: http.StatusOK},
		{name: "healthy", checkers: []pkgserver.HealthChecker{pkgserver.NewOkHealthChecker()}, want: http.StatusOK},
		{name: "one down", checkers: []pkgserver.HealthChecker{pkgserver.NewOkHealthChecker(), downChecker{}}, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(cfg, tt.checkers...).SetupMiddlewares().SetupHealthChecks("/health")
			assert.Equal(t, tt.want, serve(s, "/health").Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	m := metrics.New()
	m.Engagements.WithLabelValues("like").Inc()

	s := New(&Config{Port: "8080"}).SetupMetrics("/metrics", m.Handler())
	rec := serve(s, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `news_press_engagements_total{kind="like"} 1`)
}

func TestServer_ErrorHandler(t *testing.T) {
	s := New(&Config{Port: "8080"}).SetupErrorHandler()

	rec := serve(s, "/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
