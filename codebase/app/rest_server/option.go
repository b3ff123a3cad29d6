package restserver

import (
	"strings"

	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
	echoMidd "github.com/labstack/echo/middleware"
)

type (
	option struct {
		rootMiddlewares []echo.MiddlewareFunc
		rootHandler     echo.HandlerFunc
		httpPort        uint16
		rootPath        string
		debugMode       bool
		maxLogSize      int
	}

	// OptionFunc type
	OptionFunc func(*option)
)

var (
	// MiddlewareExcludeURLPath path not traced
	MiddlewareExcludeURLPath = map[string]struct{}{"/": {}, "/memstats": {}, "/favicon.ico": {}}
)

func getDefaultOption() option {
	return option{
		httpPort:    8000,
		rootPath:    "",
		debugMode:   true,
		maxLogSize:  65000,
		rootHandler: wrapper.HTTPHandlerDefaultRoot,
		rootMiddlewares: []echo.MiddlewareFunc{
			echoMidd.CORS(),
		},
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootPath option func
func SetRootPath(rootPath string) OptionFunc {
	return func(o *option) {
		rootPath = strings.Trim(rootPath, "/")
		if rootPath != "" {
			rootPath = "/" + rootPath
		}
		o.rootPath = rootPath
	}
}

// SetRootHTTPHandler option func
func SetRootHTTPHandler(rootHandler echo.HandlerFunc) OptionFunc {
	return func(o *option) {
		o.rootHandler = rootHandler
	}
}

// SetDebugMode option func
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// SetMaxLogSize option func, max request/response body size logged to tracer
func SetMaxLogSize(max int) OptionFunc {
	return func(o *option) {
		o.maxLogSize = max
	}
}

// AddRootMiddlewares option func
func AddRootMiddlewares(middlewares ...echo.MiddlewareFunc) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = append(o.rootMiddlewares, middlewares...)
	}
}
