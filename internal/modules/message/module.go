package message

import (
	"time"

	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/factory/types"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/internal/modules/message/delivery/resthandler"
	"github.com/golangid/nearchat/internal/modules/message/delivery/workerhandler"
	"github.com/golangid/nearchat/internal/modules/message/usecase"
)

const (
	// Name module name
	Name types.Module = "Message"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor, stream endpoint poll inbox every pollInterval
func NewModule(router usecase.RouterUsecase, inbox usecase.InboxUsecase, pollInterval time.Duration, deps dependency.Dependency) *Module {
	var mod Module
	poller := workerhandler.NewInboxPoller(inbox, pollInterval)
	mod.restHandler = resthandler.NewRestHandler(router, inbox, poller, deps)
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() types.Module {
	return Name
}
