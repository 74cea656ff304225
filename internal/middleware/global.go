package middleware

import (
	"net/http"

	"github.com/deppfellow/portfolio-contact/internal/errs"
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultBodyLimit caps JSON request bodies.
const DefaultBodyLimit = "100K"

// GlobalMiddlewares groups "global" middleware and the global error handler
// so they can read shared app dependencies from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware restricted to the configured origins.
// Credentials are allowed, so origins are never wildcarded.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowCredentials: true,
	})
}

// RequestLogger returns Echo's request logger middleware writing one
// structured "API" line per request, with severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the final status is only decided
			// by GlobalErrorHandler, so derive it from the error here.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := StatusFromError(v.Error, v.Status)

			logger := GetLogger(c)

			// The error itself was already logged by the handler pipeline
			// and GlobalErrorHandler.
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error()
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// StatusFromError returns the status an error will be rendered with,
// or fallback when err is nil or carries no status.
func StatusFromError(err error, fallback int) int {
	if err == nil {
		return fallback
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// Recover returns Echo's panic recovery middleware.
// Panics become errors handled by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// BodyLimit rejects request bodies larger than DefaultBodyLimit with 413.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(DefaultBodyLimit)
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error returned by a handler or middleware ends up here. The
// original error is logged; the client only ever sees an errs.Response.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			httpErr = fromEchoError(echoErr)
		} else {
			httpErr = errs.NewInternalServerError().WithInternal(err)
		}
	}

	logger := GetLogger(c)

	// Client faults are expected traffic, not server faults.
	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}
	e.
		Err(originalErr).
		AnErr("cause", httpErr.Internal).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}
	_ = c.JSON(httpErr.Status, httpErr.Body())
}

// fromEchoError converts Echo's own errors (404 route, 405, 413 ...) into
// the API error shape.
func fromEchoError(echoErr *echo.HTTPError) *errs.HTTPError {
	if echoErr.Code == http.StatusNotFound {
		return errs.NewNotFoundError("Route not found", nil).WithInternal(echoErr)
	}

	message := http.StatusText(echoErr.Code)
	if msg, ok := echoErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return &errs.HTTPError{
		Code:     errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message:  message,
		Status:   echoErr.Code,
		Internal: echoErr,
	}
}
