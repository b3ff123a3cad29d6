package dependency

import (
	"context"

	"github.com/golangid/nearchat/codebase/interfaces"
)

// Dependency base
type Dependency interface {
	GetMiddleware() interfaces.Middleware
	SetMiddleware(mw interfaces.Middleware)

	GetValidator() interfaces.Validator
	SetValidator(v interfaces.Validator)

	// GetBroker durable channel broker selected by DURABLE_BACKEND
	GetBroker() interfaces.QueueBroker

	interfaces.Closer
}

// Option func type
type Option func(*deps)

// SetMiddleware option func
func SetMiddleware(mw interfaces.Middleware) Option {
	return func(d *deps) {
		d.mw = mw
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

// SetBroker option func
func SetBroker(broker interfaces.QueueBroker) Option {
	return func(d *deps) {
		d.broker = broker
	}
}

func safeClose(ctx context.Context, d interfaces.Closer) error {
	if d != nil {
		return d.Disconnect(ctx)
	}
	return nil
}
