// Package metrics defines and registers all custom Prometheus metrics for the
// website. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry on package init.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/meridian-cargo/website/internal/core/domain"
)

const namespace = "tracking"

// Lookup results used as the "result" label.
const (
	ResultFound            = "found"
	ResultNotFound         = "not_found"
	ResultStoreUnavailable = "store_unavailable"
	ResultStoreCorrupt     = "store_corrupt"
	ResultError            = "error"
)

// ── Lookup metrics ────────────────────────────────────────────────────────────

// LookupsTotal counts tracking lookups.
// Label:
//   - result: found, not_found, store_unavailable, store_corrupt or error
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of tracking lookups, by result.",
	},
	[]string{"result"},
)

// LookupDuration measures a lookup from request to normalized result,
// including the store file read.
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of tracking lookups including the store read.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// RateLimitedTotal counts tracking requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of tracking requests rejected by the rate limiter.",
	},
)

// ── Page metrics ──────────────────────────────────────────────────────────────

// PageViewsTotal counts rendered marketing pages.
// Label:
//   - page: template name (e.g. "home.html")
var PageViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_views_total",
		Help:      "Total number of rendered pages, by template.",
	},
	[]string{"page"},
)

// LookupResult maps a lookup error to its "result" label.
func LookupResult(err error) string {
	switch {
	case err == nil:
		return ResultFound
	case errors.Is(err, domain.ErrTrackingNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return ResultStoreUnavailable
	case errors.Is(err, domain.ErrStoreCorrupt):
		return ResultStoreCorrupt
	default:
		return ResultError
	}
}
