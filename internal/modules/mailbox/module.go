package mailbox

import (
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/factory/types"
	"github.com/golangid/nearchat/codebase/interfaces"
	"github.com/golangid/nearchat/internal/modules/mailbox/delivery/resthandler"
	"github.com/golangid/nearchat/internal/modules/mailbox/usecase"
)

const (
	// Name module name
	Name types.Module = "Mailbox"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(uc usecase.MailboxUsecase, deps dependency.Dependency) *Module {
	var mod Module
	mod.restHandler = resthandler.NewRestHandler(uc, deps)
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
