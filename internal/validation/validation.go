// Package validation binds and validates request payloads.
//
// It uses the `validator` library to enforce rules (like required
// fields or length bounds) declared in struct tags, and extracts
// validation failures into field-level errors the client can act on.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - define a request struct with validator tags (`validate:"required,min=3"`)
//   - implement Validate() error that calls Struct(req)
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. validator.Validate caches
// struct metadata internally and is safe for concurrent use.
var validate = validator.New()

// Struct runs the struct tag constraints on v.
//
// On failure it returns validator.ValidationErrors, which
// BindAndValidate knows how to turn into field-level errors.
func Struct(v any) error {
	return validate.Struct(v)
}
