package model

import (
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-contact/internal/errs"
)

func validRequest() ContactRequest {
	return ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Line1\nLine2",
	}
}

func TestContactRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ContactRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(r *ContactRequest) {}},
		{name: "missing name", mutate: func(r *ContactRequest) { r.Name = "" }, wantMsg: MsgAllFieldsRequired},
		{name: "missing email", mutate: func(r *ContactRequest) { r.Email = "" }, wantMsg: MsgAllFieldsRequired},
		{name: "missing subject", mutate: func(r *ContactRequest) { r.Subject = "" }, wantMsg: MsgAllFieldsRequired},
		{name: "missing message", mutate: func(r *ContactRequest) { r.Message = "" }, wantMsg: MsgAllFieldsRequired},
		{
			name:    "missing field wins over bad email",
			mutate:  func(r *ContactRequest) { r.Email = "bad"; r.Message = "" },
			wantMsg: MsgAllFieldsRequired,
		},
		{name: "no at sign", mutate: func(r *ContactRequest) { r.Email = "ada.example.com" }, wantMsg: MsgInvalidEmail},
		{name: "no dot after at", mutate: func(r *ContactRequest) { r.Email = "ada@example" }, wantMsg: MsgInvalidEmail},
		{name: "whitespace", mutate: func(r *ContactRequest) { r.Email = "ada @example.com" }, wantMsg: MsgInvalidEmail},
		{name: "whitespace only name is present", mutate: func(r *ContactRequest) { r.Name = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *errs.HTTPError, got %v", err)
			}
			if httpErr.Status != http.StatusBadRequest {
				t.Fatalf("unexpected status: %d", httpErr.Status)
			}
			if httpErr.Message != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, httpErr.Message)
			}
		})
	}
}

func TestNewConfirmation(t *testing.T) {
	c := NewConfirmation()
	if !c.Success || c.Message != MsgSent {
		t.Fatalf("unexpected confirmation: %+v", c)
	}
}
