package mocks

import (
	echo "github.com/labstack/echo"
	mock "github.com/stretchr/testify/mock"
)

// Middleware is a mock type for the Middleware type
type Middleware struct {
	mock.Mock
}

// HTTPBasicAuth provides a mock function with given fields:
func (_m *Middleware) HTTPBasicAuth() echo.MiddlewareFunc {
	ret := _m.Called()

	var r0 echo.MiddlewareFunc
	if rf, ok := ret.Get(0).(func(echo.HandlerFunc) echo.HandlerFunc); ok {
		r0 = rf
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(echo.MiddlewareFunc)
	}
	return r0
}

// HTTPRequestID provides a mock function with given fields:
func (_m *Middleware) HTTPRequestID() echo.MiddlewareFunc {
	ret := _m.Called()

	var r0 echo.MiddlewareFunc
	if rf, ok := ret.Get(0).(func(echo.HandlerFunc) echo.HandlerFunc); ok {
		r0 = rf
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(echo.MiddlewareFunc)
	}
	return r0
}
