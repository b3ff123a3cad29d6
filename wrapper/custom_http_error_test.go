package wrapper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	t.Run("Testcase #1: Route not found", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/testing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		CustomHTTPErrorHandler(&echo.HTTPError{Code: http.StatusNotFound, Message: "Not Found"}, c)

		var resp HTTPResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, `Resource "GET /testing" not found`, resp.Message)
		assert.False(t, resp.Success)
	})

	t.Run("Testcase #2: Method not allowed", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/testing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		CustomHTTPErrorHandler(echo.ErrMethodNotAllowed, c)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("Testcase #3: Plain error", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/testing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		CustomHTTPErrorHandler(errors.New("boom"), c)

		var resp HTTPResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "boom", resp.Message)
	})
}
