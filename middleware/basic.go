package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/wrapper"
	"github.com/labstack/echo"
)

// Basic validate base64 encoded "username:password" against configured credential
func (m *Middleware) Basic(key string) error {
	isValid := func() bool {
		data, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			return false
		}

		decoded := strings.SplitN(string(data), ":", 2)
		if len(decoded) < 2 {
			return false
		}
		username, password := decoded[0], decoded[1]

		validUser := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
		validPass := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
		return validUser && validPass
	}

	if m.username == "" || !isValid() {
		return errors.New("Unauthorized")
	}

	return nil
}

// HTTPBasicAuth http basic auth middleware
func (m *Middleware) HTTPBasicAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm=""`)

			authorization := c.Request().Header.Get(candihelper.HeaderAuthorization)
			if authorization == "" {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, "Invalid authorization").JSON(c.Response())
			}

			key, err := extractAuthType(BASIC, authorization)
			if err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}

			if err := m.Basic(key); err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}

			return next(c)
		}
	}
}
