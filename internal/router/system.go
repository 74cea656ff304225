package router

import (
	"github.com/deppfellow/portfolio-contact/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the contact
// flow: liveness checks and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Liveness)
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json (and the docs page itself) from the embedded assets.
	r.StaticFS("/static", handler.StaticFS())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
