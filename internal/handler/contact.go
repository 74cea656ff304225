package handler

import (
	"github.com/deppfellow/portfolio-contact/internal/errs"
	"github.com/deppfellow/portfolio-contact/internal/model"
	"github.com/deppfellow/portfolio-contact/internal/server"
	"github.com/deppfellow/portfolio-contact/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	Handler
	service *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
		service: contactService,
	}
}

// SubmitContact relays a validated submission to the site owner.
//
// Provider failures never reach the client: the response carries only the
// generic delivery message and the cause is kept for the error log.
func (h *ContactHandler) SubmitContact(c echo.Context, req *model.ContactRequest) (*model.Confirmation, error) {
	confirmation, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		return nil, errs.NewDeliveryError(model.MsgDeliveryFailed, err)
	}

	return confirmation, nil
}
