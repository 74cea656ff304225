package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-contact/internal/middleware"
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/labstack/echo/v4"
)

// TimestampLayout renders UTC timestamps with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// HealthResponse is the liveness payload. Environment is only set on /status.
type HealthResponse struct {
	Message     string `json:"message"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment,omitempty"`
}

// HealthHandler exposes liveness endpoints for uptime monitors and load
// balancers. The service has no downstream dependency worth probing.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Liveness answers GET /.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, newHealthResponse(""))
}

// CheckHealth answers GET /status with the running environment included.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := newHealthResponse(h.server.Config.Primary.Env)

	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent(
			"HealthCheck",
			map[string]interface{}{
				"operation":   "health_check",
				"environment": response.Environment,
			},
		)
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func newHealthResponse(environment string) HealthResponse {
	return HealthResponse{
		Message:     "Portfolio Backend is running!",
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(TimestampLayout),
		Environment: environment,
	}
}
