package errs

import "strings"

// FieldError is a single field-level validation error.
//
// Example:
//
//	{ "field": "price", "error": "is required" }
type FieldError struct {
	// Field is the lowercased field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error shape serialized to API clients.
//
// It satisfies the built-in error interface so handlers can return it
// directly; the global error handler recognizes it with errors.As and
// writes it as the response body.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors, empty for
	// non-validation failures.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error returns the message, so logging an HTTPError shows something useful.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only matches on type, not on code or status, so
// errors.Is(err, &HTTPError{}) answers "is this one of ours".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with the message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores turns an HTTP status text into a stable
// machine-readable code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
