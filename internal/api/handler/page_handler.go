package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meridian-cargo/website/internal/api/metrics"
)

// Page binds a fixed URL path to the template rendered for it.
type Page struct {
	Path     string
	Template string
}

// Pages are the marketing pages of the site. None of them take parameters
// or receive data.
var Pages = []Page{
	{Path: "/", Template: "home.html"},
	{Path: "/about", Template: "about.html"},
	{Path: "/services", Template: "services.html"},
	{Path: "/destinations", Template: "destinations.html"},
	{Path: "/tracking", Template: "tracking.html"},
	{Path: "/contact", Template: "contact.html"},
}

// PageHandler renders static marketing pages through the echo renderer.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Render returns a handler that renders the named template with no data.
func (h *PageHandler) Render(template string) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.PageViewsTotal.WithLabelValues(template).Inc()
		return c.Render(http.StatusOK, template, nil)
	}
}
