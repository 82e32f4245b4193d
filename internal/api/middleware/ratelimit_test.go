package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

func runRateLimit(t *testing.T, l *stubLimiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/track/abc", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := RateLimit(l, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRateLimit_Allows(t *testing.T) {
	l := &stubLimiter{allowed: true}
	rec, called := runRateLimit(t, l)

	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(l.keys) != 1 || l.keys[0] != "203.0.113.7" {
		t.Errorf("expected limiter keyed by client ip, got %v", l.keys)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{allowed: false})

	if called {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rec, called := runRateLimit(t, &stubLimiter{err: errors.New("redis down")})

	if !called {
		t.Fatalf("limiter errors must not block requests")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
