package interfaces

import (
	"github.com/labstack/echo"
)

// Middleware abstraction
type Middleware interface {
	// HTTPBasicAuth guard route with basic auth credential from environment
	HTTPBasicAuth() echo.MiddlewareFunc
	// HTTPRequestID set X-Request-Id header when client does not send it
	HTTPRequestID() echo.MiddlewareFunc
}
