package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error.
// Use WithMessage for a friendlier text and WithInternal to keep the cause
// for logging.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError creates the 400 returned when a request payload is rejected.
//
//	return errs.ValidationError("Please provide a valid email address", fieldErrors)
func ValidationError(message string, fieldErrors []FieldError) *HTTPError {
	code := CodeValidationFailed
	return NewBadRequestError(message, &code, fieldErrors)
}

// Error codes shared by the API.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidBody      = "INVALID_BODY"
	CodeDeliveryFailed   = "DELIVERY_FAILED"
)

// NewDeliveryError creates the 500 returned when the mail provider could not
// take a message. cause is kept for logging only.
func NewDeliveryError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:     CodeDeliveryFailed,
		Message:  message,
		Status:   http.StatusInternalServerError,
		Internal: cause,
	}
}
