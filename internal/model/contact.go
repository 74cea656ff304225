package model

import (
	"errors"

	"github.com/deppfellow/portfolio-contact/internal/errs"
	"github.com/deppfellow/portfolio-contact/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages for the contact endpoint.
const (
	MsgAllFieldsRequired = "All fields are required: name, email, subject, message"
	MsgInvalidEmail      = "Please provide a valid email address"
	MsgSent              = "Message sent successfully! I'll get back to you soon."
	MsgDeliveryFailed    = "Failed to send message. Please try again later."
)

// ContactRequest is a contact-form submission.
// It lives for a single request and is never stored.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,address_shape"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Validate checks presence of every field first and the address shape
// second, so a submission missing fields never reports a bad address.
func (r *ContactRequest) Validate() error {
	err := validation.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := validation.FieldErrors(validationErrors)
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return errs.ValidationError(MsgAllFieldsRequired, fieldErrors)
		}
	}
	return errs.ValidationError(MsgInvalidEmail, fieldErrors)
}

// Confirmation is returned once the provider accepted the email.
type Confirmation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewConfirmation builds the success payload.
func NewConfirmation() *Confirmation {
	return &Confirmation{
		Success: true,
		Message: MsgSent,
	}
}
