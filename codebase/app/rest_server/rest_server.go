package restserver

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/golangid/nearchat/codebase/factory"
	"github.com/golangid/nearchat/codebase/factory/types"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
	echoMidd "github.com/labstack/echo/middleware"
)

type restServer struct {
	opt          option
	serverEngine *echo.Echo
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		serverEngine: echo.New(),
		opt:          getDefaultOption(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	server.serverEngine.Use(server.opt.rootMiddlewares...)
	mw := service.GetDependency().GetMiddleware()
	server.serverEngine.Use(mw.HTTPRequestID())

	server.serverEngine.GET("/", server.opt.rootHandler)
	server.serverEngine.GET("/memstats", wrapper.HTTPHandlerMemstats, mw.HTTPBasicAuth())

	rootMiddlewares := []echo.MiddlewareFunc{
		wrapper.HTTPMiddlewareTracer(wrapper.HTTPMiddlewareTracerConfig{
			MaxLogSize:  server.opt.maxLogSize,
			ExcludePath: MiddlewareExcludeURLPath,
		}),
	}
	if server.opt.debugMode {
		rootMiddlewares = append(rootMiddlewares, echoMidd.Logger())
	}
	restRootPath := server.serverEngine.Group(server.opt.rootPath, rootMiddlewares...)
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(restRootPath)
		}
	}

	var routes strings.Builder
	httpRoutes := server.serverEngine.Routes()
	sort.Slice(httpRoutes, func(i, j int) bool {
		if httpRoutes[i].Path == httpRoutes[j].Path {
			return httpRoutes[i].Method < httpRoutes[j].Method
		}
		return httpRoutes[i].Path < httpRoutes[j].Path
	})
	for _, route := range httpRoutes {
		if !strings.Contains(route.Name, "(*Group)") {
			routes.WriteString(fmt.Sprintf("[REST-ROUTE] %-6s %-40s --> %s\n", route.Method, route.Path, route.Name))
		}
	}
	logger.LogGreen(routes.String())

	server.serverEngine.HideBanner = true
	server.serverEngine.HidePort = true
	return server
}

func (s *restServer) Serve() {
	port := fmt.Sprintf(":%d", s.opt.httpPort)
	fmt.Printf("\x1b[34;1m⇨ REST server run at port [::]%s\x1b[0m\n\n", port)
	if err := s.serverEngine.Start(port); err != nil {
		switch e := err.(type) {
		case *net.OpError:
			panic(fmt.Errorf("REST Server: Unexpected Error: %w", e))
		}
	}
}

func (s *restServer) Shutdown(ctx context.Context) {
	deferFunc := logger.LogWithDefer("Stopping REST HTTP server...")
	defer deferFunc()

	if err := s.serverEngine.Shutdown(ctx); err != nil {
		logger.LogE(err.Error())
	}
}

func (s *restServer) Name() string {
	return string(types.REST)
}
