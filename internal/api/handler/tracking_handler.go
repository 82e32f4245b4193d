package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meridian-cargo/website/internal/api/metrics"
	"github.com/meridian-cargo/website/internal/core/ports"
)

// TrackingHandler serves shipment lookups for the tracking page.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /api/track/:tracking_id.
//
// @Summary      Look up a shipment by tracking ID
// @Description  The ID is matched case-insensitively; the response always carries it uppercased.
// @Tags         tracking
// @Produce      json
// @Param        tracking_id  path      string  true  "Tracking ID (any casing)"
// @Success      200          {object}  trackingResponse
// @Failure      404          {object}  errorResponse
// @Failure      429          {object}  errorResponse
// @Failure      500          {object}  errorResponse
// @Router       /api/track/{tracking_id} [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	start := time.Now()

	shipment, err := h.service.Track(c.Request().Context(), trackingParam(c))

	result := metrics.LookupResult(err)
	metrics.LookupsTotal.WithLabelValues(result).Inc()
	metrics.LookupDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		if code, msg, ok := LookupError(err); ok {
			return c.JSON(code, errorResponse{Error: msg})
		}
		return err
	}

	return c.JSON(http.StatusOK, toTrackingResponse(shipment))
}

// trackingParam returns the decoded path segment. Echo routes on the raw path,
// leaving escapes in the param, whenever the request path needed one that
// plain re-encoding would not reproduce (e.g. %2F).
func trackingParam(c echo.Context) string {
	raw := c.Param("tracking_id")
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}
