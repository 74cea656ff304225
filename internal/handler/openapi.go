package handler

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed static/openapi.html static/openapi.json
var staticFiles embed.FS

// StaticFS returns the embedded docs assets rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// OpenAPIHandler serves the API docs UI and the OpenAPI document it loads.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI writes static/openapi.html.
// Caching is disabled so doc updates show up right after a deploy.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := staticFiles.ReadFile("static/openapi.html")
	if err != nil {
		return errors.Wrap(err, "failed to read OpenAPI UI page")
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return errors.Wrap(err, "failed to write HTML response")
	}

	return nil
}
