package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, the only text shown to clients.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
//   - Internal: the underlying cause. Logged, never serialized.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError

	Internal error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the client-facing Message; the cause is reachable through Unwrap.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the internal cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// Is reports whether target is also an *HTTPError.
//
// This does NOT compare Code/Status. It only checks the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Errors:   e.Errors,
		Internal: e.Internal,
	}
}

// WithInternal returns a copy of this HTTPError carrying err as its cause.
func (e *HTTPError) WithInternal(err error) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Errors:   e.Errors,
		Internal: err,
	}
}

// Response is the JSON body written for every failed request:
//
//	{ "success": false, "error": "...", "code": "BAD_REQUEST" }
type Response struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Body converts the error into its client-facing JSON body.
func (e *HTTPError) Body() Response {
	return Response{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
