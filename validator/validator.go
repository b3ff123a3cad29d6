package validator

import "github.com/golangid/nearchat/codebase/interfaces"

// Validator instance
type Validator struct {
	*StructValidator
}

// NewValidator constructor, using struct validator (github.com/go-playground/validator)
func NewValidator(opts ...StructValidatorOptionFunc) interfaces.Validator {
	return &Validator{
		StructValidator: NewStructValidator(opts...),
	}
}
