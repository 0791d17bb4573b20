package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a Validator with the default tag set.
func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate checks struct tags on i and returns the first validation error.
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
