package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.Use(Logger(WithSkipper(func(c echo.Context) bool { return c.Path() == "/health" })))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for _, target := range []string{"/ok", "/fail", "/health"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	out := buf.String()
	assert.Contains(t, out, "msg=REQUEST method=GET uri=/ok status=200")
	assert.Contains(t, out, "msg=REQUEST_ERROR method=GET uri=/fail status=500")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "uri=/health")
}
