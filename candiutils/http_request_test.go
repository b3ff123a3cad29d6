package candiutils

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPRequest(t *testing.T) {
	request := NewHTTPRequest(
		HTTPRequestSetRetries(1),
		HTTPRequestSetSleepBetweenRetry(10*time.Millisecond),
		HTTPRequestSetHTTPErrorCodeThreshold(http.StatusBadRequest),
		HTTPRequestSetTimeout(time.Second),
	)
	assert.NotNil(t, request)
}

func TestHTTPRequestDo(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	urlMock := "http://peer.local/v1/mailbox/bob/deliver"
	testCase := map[string]struct {
		code      int
		wantCode  int
		wantError string
		response  interface{}
		transport error
	}{
		"Testcase #1: Positive": {
			code: http.StatusOK, wantCode: http.StatusOK,
			response: map[string]interface{}{"success": true, "message": "delivered", "code": http.StatusOK},
		},
		"Testcase #2: Negative, error message from response body": {
			code: http.StatusNotFound, wantCode: http.StatusNotFound, wantError: "mailbox closed",
			response: map[string]interface{}{"success": false, "message": "mailbox closed", "code": http.StatusNotFound},
		},
		"Testcase #3: Negative, transport error": {
			transport: errors.New("connection refused"), wantError: "connection refused",
		},
	}

	for name, tt := range testCase {
		t.Run(name, func(t *testing.T) {
			httpmock.Reset()
			if tt.transport != nil {
				httpmock.RegisterResponder(http.MethodPost, urlMock, httpmock.NewErrorResponder(tt.transport))
			} else {
				httpmock.RegisterResponder(http.MethodPost, urlMock, httpmock.NewJsonResponderOrPanic(tt.code, tt.response))
			}

			request := NewHTTPRequest(HTTPRequestSetTimeout(time.Second))
			_, code, err := request.Do(context.Background(), http.MethodPost, urlMock, []byte(`{"sender":"alice","message":"hi"}`), nil)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantError != "" {
				assert.ErrorContains(t, err, tt.wantError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}
