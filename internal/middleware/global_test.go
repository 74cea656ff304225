package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-contact/internal/errs"
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil keeps fallback", nil, http.StatusOK},
		{"api error", errs.ValidationError("bad", nil), http.StatusBadRequest},
		{"echo error", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromError(tt.err, http.StatusOK); got != tt.want {
				t.Fatalf("StatusFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGlobalErrorHandlerHidesUnknownErrors(t *testing.T) {
	logger := zerolog.Nop()
	global := NewGlobalMiddlewares(&server.Server{Logger: &logger})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	global.GlobalErrorHandler(errors.New("dial tcp: connection refused"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	logger := zerolog.Nop()
	global := NewGlobalMiddlewares(&server.Server{Logger: &logger})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/missing", nil), rec)

	global.GlobalErrorHandler(echo.ErrNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("HEAD responses must not carry a body")
	}
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seen != "abc" || rec.Header().Get(RequestIDHeader) != "abc" {
		t.Fatalf("expected incoming id to be reused, got context=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}
}
