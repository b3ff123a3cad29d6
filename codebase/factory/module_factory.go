package factory

import (
	"github.com/golangid/nearchat/codebase/factory/types"
	"github.com/golangid/nearchat/codebase/interfaces"
)

// ModuleFactory factory
type ModuleFactory interface {
	// RESTHandler nil when module has no http surface
	RESTHandler() interfaces.EchoRestHandler
	Name() types.Module
}
