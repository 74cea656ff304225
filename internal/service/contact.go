package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/portfolio-contact/internal/config"
	"github.com/deppfellow/portfolio-contact/internal/lib/email"
	"github.com/deppfellow/portfolio-contact/internal/model"
	"github.com/rs/zerolog"
)

// DeliveryError reports that a submission could not be handed to the
// email provider. Err is the provider (or composition) failure.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("contact delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ContactService turns validated submissions into operator emails.
// It holds no per-request state and is safe for concurrent use.
type ContactService struct {
	sender email.Sender
	from   string
	to     string
}

// NewContactService builds the service around a delivery capability.
func NewContactService(sender email.Sender, cfg config.ContactConfig) (*ContactService, error) {
	if sender == nil {
		return nil, errors.New("contact service requires an email sender")
	}

	return &ContactService{
		sender: sender,
		from:   cfg.From,
		to:     cfg.Recipient,
	}, nil
}

// Submit composes the email for req and dispatches it exactly once.
//
// req must already be validated. Any failure is returned as *DeliveryError.
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.Confirmation, error) {
	logger := zerolog.Ctx(ctx)

	logger.Info().
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Msg("received contact form submission")

	msg, err := email.NewContactMessage(s.from, s.to, email.ContactData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return nil, &DeliveryError{Err: err}
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, &DeliveryError{Err: err}
	}

	logger.Info().Msg("email sent successfully")

	return model.NewConfirmation(), nil
}
