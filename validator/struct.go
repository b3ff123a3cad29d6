package validator

import (
	"errors"
	"reflect"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
	"github.com/golangid/nearchat/candihelper"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		ve := newEngine()
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(ve)
		}
		v.Validator = ve
	}
}

// StructValidator struct
type StructValidator struct {
	Validator *validatorengine.Validate
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here)
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	// set struct validator
	sv := &StructValidator{}
	for _, opt := range opts {
		opt(sv)
	}

	if sv.Validator == nil {
		sv.Validator = newEngine()
	}

	return sv
}

// newEngine report field by its json name, so error key match request payload
func newEngine() *validatorengine.Validate {
	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return ve
}

// ValidateStruct function
func (v *StructValidator) ValidateStruct(data interface{}) error {
	if err := v.Validator.Struct(data); err != nil {
		switch errs := err.(type) {
		case validatorengine.ValidationErrors:
			multiError := candihelper.NewMultiError()
			for _, e := range errs {
				multiError.Append(e.Field(), errors.New(fieldMessage(e)))
			}
			if multiError.HasError() {
				return multiError
			}
		default:
			return err
		}
	}

	return nil
}

func fieldMessage(e validatorengine.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be greater than or equal to " + e.Param()
	case "max", "lte":
		return "must be less than or equal to " + e.Param()
	case "oneof":
		return "must be one of [" + e.Param() + "]"
	case "url":
		return "must be a valid url"
	case "excludesall":
		return "must not contain any of " + e.Param()
	}
	return "failed on the '" + e.Tag() + "' rule"
}
