package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo so handlers can
// rely on struct tags (oneof, dive, gte) instead of hand-written field checks.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator registered on the echo instance at startup
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
