// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "spotter/internal/domain/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used for all request DTOs.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags and reports failures as a 400
// application error so the error handler serializes them uniformly.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
