package service

import (
	"github.com/deppfellow/portfolio-contact/internal/server"
)

// Services groups every business service so handlers receive one value.
type Services struct {
	Contact *ContactService
}

// NewServices wires services from the application container.
func NewServices(s *server.Server) (*Services, error) {
	contactService, err := NewContactService(s.Email, s.Config.Contact)
	if err != nil {
		return nil, err
	}

	return &Services{
		Contact: contactService,
	}, nil
}
