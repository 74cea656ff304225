// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-contact/internal/handler"
	"github.com/deppfellow/portfolio-contact/internal/middleware"
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the full middleware chain and
// every route registered.
//
// Middleware order matters: the request id comes first so every later log
// line carries it, and the New Relic transaction must exist before the
// context logger reads trace ids from it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerContactRoutes(api, h)

	return router
}

func registerContactRoutes(g *echo.Group, h *handler.Handlers) {
	g.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.SubmitContact, http.StatusOK))
}
