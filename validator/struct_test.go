package validator

import (
	"testing"

	validatorengine "github.com/go-playground/validator/v10"
	"github.com/golangid/nearchat/candihelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	ID       string  `json:"id" validate:"required,max=8,excludesall=/"`
	Status   string  `json:"status" validate:"required,oneof=online offline"`
	RadiusKm float64 `json:"radiusKm" validate:"gte=0"`
	Endpoint string  `json:"endpoint,omitempty" validate:"omitempty,url"`
}

func TestStructValidator_ValidateStruct(t *testing.T) {
	v := NewValidator()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		err := v.ValidateStruct(&registerPayload{ID: "alice", Status: "online", RadiusKm: 2, Endpoint: "http://node-b:8000"})
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, every invalid field reported by json name", func(t *testing.T) {
		err := v.ValidateStruct(&registerPayload{ID: "a/b", Status: "away", RadiusKm: -1, Endpoint: "not a url"})
		require.Error(t, err)

		multiError, ok := err.(candihelper.MultiError)
		require.True(t, ok)
		errs := multiError.ToMap()
		assert.Equal(t, "must not contain any of /", errs["id"])
		assert.Equal(t, "must be one of [online offline]", errs["status"])
		assert.Equal(t, "must be greater than or equal to 0", errs["radiusKm"])
		assert.Equal(t, "must be a valid url", errs["endpoint"])
	})

	t.Run("Testcase #3: Negative, required", func(t *testing.T) {
		err := v.ValidateStruct(&registerPayload{Status: "online"})
		require.Error(t, err)
		assert.Equal(t, "is required", err.(candihelper.MultiError).ToMap()["id"])
	})

	t.Run("Testcase #4: Negative, not a struct", func(t *testing.T) {
		assert.Error(t, v.ValidateStruct("alice"))
	})
}

func TestSetCoreStructValidatorOption(t *testing.T) {
	called := false
	sv := NewStructValidator(SetCoreStructValidatorOption(func(v *validatorengine.Validate) {
		called = true
	}))
	assert.True(t, called)
	assert.NotNil(t, sv.Validator)
}
