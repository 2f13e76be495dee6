package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deadpoolio/chimichangapp/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. bind path params, query params, and body into payload
//  2. payload.Validate() applies the struct tag constraints
//  3. failures become a 400 *errs.HTTPError with field-level errors
//
// Binding runs as three explicit phases because echo's combined Bind
// only binds query params on GET/DELETE, and the combined item update
// route needs query binding on PUT.
//
// payload must be a pointer to a struct, otherwise binding cannot
// populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := new(echo.DefaultBinder)

	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}
	if err := binder.BindQueryParams(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}
	if err := binder.BindBody(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an echo binding
// error. Echo wraps bind failures (wrong types, malformed JSON, failed
// UnmarshalParam) in *echo.HTTPError with the detail in Message.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
		return fmt.Sprintf("%v", echoErr.Message)
	}
	return http.StatusText(http.StatusBadRequest)
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator.ValidationErrors into
// user-friendly per-field messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a tag failure (e.g. an invalid value passed to the
		// validator itself). Report it as a single opaque error.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means length for strings, value for numbers.
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", fe.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
