package mocks

import mock "github.com/stretchr/testify/mock"

// Validator is a mock type for the Validator type
type Validator struct {
	mock.Mock
}

// ValidateStruct provides a mock function with given fields: data
func (_m *Validator) ValidateStruct(data interface{}) error {
	ret := _m.Called(data)
	return ret.Error(0)
}
