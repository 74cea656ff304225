package handler

import (
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/deppfellow/portfolio-contact/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	Contact *ContactHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Contact: NewContactHandler(s, services.Contact),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
