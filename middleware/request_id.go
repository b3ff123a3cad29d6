package middleware

import (
	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/candishared"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

// HTTPRequestID propagate X-Request-Id header to response and request context, generate one when missing
func (m *Middleware) HTTPRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(candihelper.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(candihelper.HeaderXRequestID, requestID)
			c.SetRequest(req.WithContext(candishared.SetToContext(req.Context(), candishared.ContextKeyRequestID, requestID)))
			return next(c)
		}
	}
}
