package dependency

import (
	"context"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/codebase/interfaces"
)

type deps struct {
	mw        interfaces.Middleware
	validator interfaces.Validator
	broker    interfaces.QueueBroker
}

// InitDependency constructor
func InitDependency(opts ...Option) Dependency {
	d := new(deps)
	for _, o := range opts {
		o(d)
	}

	return d
}

func (d *deps) GetMiddleware() interfaces.Middleware {
	return d.mw
}

func (d *deps) SetMiddleware(mw interfaces.Middleware) {
	d.mw = mw
}

func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}

func (d *deps) SetValidator(v interfaces.Validator) {
	d.validator = v
}

func (d *deps) GetBroker() interfaces.QueueBroker {
	return d.broker
}

func (d *deps) Disconnect(ctx context.Context) error {
	mErr := candihelper.NewMultiError()
	if d.broker != nil {
		mErr.Append(d.broker.Name(), safeClose(ctx, d.broker))
	}
	if mErr.HasError() {
		return mErr
	}
	return nil
}
