package wrapper

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapHTTPResponseWriter(t *testing.T) {
	buff := new(bytes.Buffer)
	rec := httptest.NewRecorder()
	httpResp := NewWrapHTTPResponseWriter(buff, rec)
	httpResp.WriteHeader(http.StatusAccepted)
	httpResp.Write([]byte("test"))
	httpResp.Flush()

	assert.Equal(t, http.StatusAccepted, httpResp.StatusCode())
	assert.Equal(t, "test", buff.String())
	assert.Equal(t, "test", rec.Body.String())
	assert.True(t, rec.Flushed)
	assert.NotNil(t, httpResp.Header())

	_, _, err := httpResp.Hijack()
	assert.Error(t, err)
}
