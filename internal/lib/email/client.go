// Package email provides the email delivery capability.
//
// Sender is the only contract the rest of the application depends on.
// Client implements it on top of Resend (resend-go).
package email

import (
	"context"

	"github.com/deppfellow/portfolio-contact/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Message is a fully composed email ready to hand to a provider.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers a composed message. Implementations make a single
// attempt and return the provider error unchanged in meaning.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Client wraps the Resend client and a logger.
type Client struct {
	client *resend.Client
	logger *zerolog.Logger
}

var _ Sender = (*Client)(nil)

// NewClient creates an email Client authenticated with the Resend API key
// from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithResend(resend.NewClient(cfg.Integration.ResendAPIKey), logger)
}

// NewClientWithResend wraps an already configured Resend client, e.g. one
// built with resend.NewCustomClient or pointed at another BaseURL.
func NewClientWithResend(client *resend.Client, logger *zerolog.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// Send delivers msg through the Resend API.
//
// The call blocks until Resend answers or ctx is done. There is no retry.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("provider", "resend").
		Str("email_id", sent.Id).
		Msg("email accepted by provider")

	return nil
}
