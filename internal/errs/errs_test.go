package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestInternalServerErrorKeepsCauseOutOfBody(t *testing.T) {
	cause := errors.New("resend: 401 invalid api key")
	err := NewInternalServerError().
		WithMessage("Failed to send message. Please try again later.").
		WithInternal(cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if err.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", err.Status)
	}

	body := err.Body()
	if body.Success {
		t.Fatalf("error body must report success=false")
	}
	if body.Error != "Failed to send message. Please try again later." {
		t.Fatalf("unexpected message: %q", body.Error)
	}
	if body.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("unexpected code: %q", body.Code)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("Please provide a valid email address", []FieldError{{Field: "email", Error: "invalid"}})

	if err.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", err.Status)
	}
	if err.Code != CodeValidationFailed {
		t.Fatalf("unexpected code: %q", err.Code)
	}

	var target *HTTPError
	if !errors.As(error(err), &target) {
		t.Fatalf("expected errors.As to find *HTTPError")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Not Found"); got != "NOT_FOUND" {
		t.Fatalf("unexpected code: %q", got)
	}
}
