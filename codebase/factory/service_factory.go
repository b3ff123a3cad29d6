package factory

import (
	"github.com/golangid/nearchat/codebase/factory/dependency"
	"github.com/golangid/nearchat/codebase/factory/types"
)

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() dependency.Dependency
	GetModules() []ModuleFactory
	Name() types.Service
}
