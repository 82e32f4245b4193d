package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meridian-cargo/website/internal/api/metrics"
)

// MsgRateLimited is returned with 429 responses.
const MsgRateLimited = "Too many tracking requests. Please try again shortly."

// Limiter decides whether one more request from key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients that exceed the limiter's quota, keyed by client
// IP. Limiter failures let the request through.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("remote_ip", ip).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": MsgRateLimited})
			}
			return next(c)
		}
	}
}
