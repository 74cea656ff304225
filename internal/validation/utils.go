package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/deppfellow/portfolio-contact/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error, usually by calling validation.Struct
//   - Return validator.ValidationErrors, CustomValidationErrors, or an
//     *errs.HTTPError when the payload owns its client-facing message
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// Used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// AddressShapeTag is the validator tag for the permissive address rule.
const AddressShapeTag = "address_shape"

// addressShapeRegex accepts local-part "@" domain-with-dot, without
// whitespace. Whitespace is the ECMAScript \s class, which also covers
// vertical tab, Unicode spaces and the BOM; RE2's \s does not.
var addressShapeRegex = regexp.MustCompile(
	`^[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+` +
		`@[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+` +
		`\.[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+$`,
)

// IsAddressShaped reports whether s looks like an email address.
//
// Note: this is intentionally permissive and does not validate per RFC 5322.
func IsAddressShaped(s string) bool {
	return addressShapeRegex.MatchString(s)
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(AddressShapeTag, func(fl validator.FieldLevel) bool {
		return IsAddressShaped(fl.Field().String())
	})
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags using the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// BindAndValidate binds the JSON request body into payload and validates it.
//
// Flow:
//  1. The body is decoded into payload. Type mismatches leave the offending
//     field at its zero value so Validate reports it as missing. Bodies that
//     are empty or not JSON are treated as an empty payload.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) if either step fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bindBody(c, payload); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.ValidationError("Validation failed", FieldErrors(err))
	}

	return nil
}

// bindBody decodes a JSON body into payload. The whole body must be a
// single JSON value; trailing data is rejected as an unreadable body.
func bindBody(c echo.Context, payload any) error {
	if !isJSON(c.Request()) {
		return nil
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code == http.StatusRequestEntityTooLarge {
			return echoErr
		}
		return invalidBody(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	err = json.Unmarshal(body, payload)

	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typeErr):
		// encoding/json keeps decoding past a type mismatch.
		return nil
	default:
		return invalidBody(err)
	}
}

func invalidBody(cause error) *errs.HTTPError {
	code := errs.CodeInvalidBody
	return errs.NewBadRequestError("Invalid request body", &code, nil).WithInternal(cause)
}

func isJSON(r *http.Request) bool {
	mediaType, _, _ := strings.Cut(r.Header.Get(echo.HeaderContentType), ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), echo.MIMEApplicationJSON)
}

// FieldErrors converts validator.ValidationErrors or CustomValidationErrors
// into client-facing field errors.
func FieldErrors(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "email", AddressShapeTag:
			msg = "must be a valid email address"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
