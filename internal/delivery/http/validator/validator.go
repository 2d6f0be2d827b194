// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "bakehouse/internal/domain/errors"
)

// Validator wraps a shared validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the wire-level
// missing-fields error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingFields.WithDetails(err.Error())
	}

	return nil
}
