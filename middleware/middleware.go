package middleware

import (
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/config/env"
)

// Middleware impl
type Middleware struct {
	username, password string
}

// OptionFunc type
type OptionFunc func(*Middleware)

// SetBasicAuthCredential option func, override credential from environment
func SetBasicAuthCredential(username, password string) OptionFunc {
	return func(m *Middleware) {
		m.username, m.password = username, password
	}
}

// NewMiddleware create new middleware instance, basic auth credential from environment
func NewMiddleware(opts ...OptionFunc) interfaces.Middleware {
	mw := &Middleware{
		username: env.BaseEnv().BasicAuthUsername,
		password: env.BaseEnv().BasicAuthPassword,
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}
