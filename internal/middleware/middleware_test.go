package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/castromatias32878-collab/WebVastum2025/internal/metrics"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := log.Logger
	buf := &bytes.Buffer{}
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = orig })
	return buf
}

func TestLoggingMiddleware(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/logos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRequestID, "rid-123")

	err := Logging()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	line := buf.String()
	for _, want := range []string{`"request_id":"rid-123"`, `"method":"GET"`, `"path":"/api/logos"`, `"status":200`, `"level":"info"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected log output to contain %s, got %s", want, line)
		}
	}

	// errors are rendered by echo, logged and propagated
	buf.Reset()
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set(ContextKeyRequestID, "rid-456")
	expected := errors.New("boom")
	err = Logging()(func(c echo.Context) error {
		return expected
	})(c)
	if !strings.Contains(buf.String(), "rid-456") || !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error log entry with new request id, got %s", buf.String())
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from echo error handler, got %d", rec.Code)
	}
	if !errors.Is(err, expected) {
		t.Fatalf("expected error to bubble up")
	}
}

func TestLoggingMiddlewareWarnsOnClientErrors(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/logos/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = Logging()(func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Logo no encontrado"})
	})(c)
	if !strings.Contains(buf.String(), `"level":"warn"`) || !strings.Contains(buf.String(), `"status":404`) {
		t.Fatalf("expected warn entry, got %s", buf.String())
	}
}

func TestMetricsMiddleware(t *testing.T) {
	e := echo.New()
	mw := Metrics()

	req := httptest.NewRequest(http.MethodGet, "/api/contactos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/contactos")

	counter := metrics.RequestsTotal.WithLabelValues("/api/contactos", http.MethodGet, "200")
	before := testutil.ToFloat64(counter)
	if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("expected counter to increase, got %v (before %v)", got, before)
	}

	notFound := metrics.RequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
	before = testutil.ToFloat64(notFound)
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), rec)
	err := mw(func(c echo.Context) error { return echo.ErrNotFound })(c)
	if !errors.Is(err, echo.ErrNotFound) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
	if got := testutil.ToFloat64(notFound); got != before+1 {
		t.Fatalf("expected 404 counter to increase, got %v (before %v)", got, before)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	handler := RequestID()

	t.Run("reuse incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "incoming")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(func(c echo.Context) error {
			if RequestIDFromContext(c) != "incoming" {
				t.Fatalf("expected request id to be stored")
			}
			return c.NoContent(http.StatusOK)
		})(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if rec.Header().Get("X-Request-ID") != "incoming" {
			t.Fatalf("expected response header to propagate request id")
		}
	})

	t.Run("generate when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(func(c echo.Context) error {
			rid := RequestIDFromContext(c)
			if rid == "" {
				t.Fatalf("expected generated request id")
			}
			return c.NoContent(http.StatusOK)
		})(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected response header set")
		}
	})
}

func TestRequestIDRejectsUnusableHeader(t *testing.T) {
	e := echo.New()

	for _, incoming := range []string{"has space", strings.Repeat("a", 200), "tab\tid"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", incoming)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := RequestID()(func(c echo.Context) error { return nil })(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := RequestIDFromContext(c); got == incoming || got == "" {
			t.Fatalf("expected generated id for %q, got %q", incoming, got)
		}
	}
}
