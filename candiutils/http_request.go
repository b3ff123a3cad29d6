package candiutils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/tracer"
)

type (
	// httpRequestImpl struct
	httpRequestImpl struct {
		client                 *httpclient.Client
		retries                int
		sleepBetweenRetry      time.Duration
		httpErrorCodeThreshold int
		timeout                time.Duration
	}

	// HTTPRequest interface
	HTTPRequest interface {
		Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) (respBody []byte, respCode int, err error)
	}

	// HTTPRequestOption func type
	HTTPRequestOption func(*httpRequestImpl)
)

// HTTPRequestSetRetries option func, 0 means no retry
func HTTPRequestSetRetries(retries int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.retries = retries
	}
}

// HTTPRequestSetSleepBetweenRetry option func
func HTTPRequestSetSleepBetweenRetry(sleepBetweenRetry time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.sleepBetweenRetry = sleepBetweenRetry
	}
}

// HTTPRequestSetHTTPErrorCodeThreshold option func, response code from threshold is returned as error
func HTTPRequestSetHTTPErrorCodeThreshold(httpErrorCodeThreshold int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.httpErrorCodeThreshold = httpErrorCodeThreshold
	}
}

// HTTPRequestSetTimeout option func
func HTTPRequestSetTimeout(timeout time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.timeout = timeout
	}
}

// NewHTTPRequest http client constructor using heimdall
func NewHTTPRequest(opts ...HTTPRequestOption) HTTPRequest {
	httpReq := &httpRequestImpl{
		retries:                0,
		sleepBetweenRetry:      500 * time.Millisecond,
		httpErrorCodeThreshold: http.StatusBadRequest,
		timeout:                10 * time.Second,
	}
	for _, opt := range opts {
		opt(httpReq)
	}

	// define a maximum jitter interval
	maximumJitterInterval := 5 * time.Millisecond
	backoff := heimdall.NewConstantBackoff(httpReq.sleepBetweenRetry, maximumJitterInterval)
	retrier := heimdall.NewRetrier(backoff)

	httpReq.client = httpclient.NewClient(
		httpclient.WithHTTPTimeout(httpReq.timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(httpReq.retries),
	)
	return httpReq
}

// Do function, for http client call
func (request *httpRequestImpl) Do(ctx context.Context, method, url string, requestBody []byte, headers map[string]string) (respBody []byte, respCode int, err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, respCode, err
	}

	trace := tracer.StartTrace(ctx, fmt.Sprintf("HTTP Request: %s %s%s", method, req.URL.Host, req.URL.Path))
	defer func() {
		trace.SetError(err)
		trace.Finish()
	}()

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get(candihelper.HeaderContentType) == "" && requestBody != nil {
		req.Header.Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	}

	traceHeader := map[string]string{}
	trace.InjectRequestHeader(traceHeader)
	for key, value := range traceHeader {
		req.Header.Set(key, value)
	}

	trace.SetTag("http.method", req.Method)
	trace.SetTag("http.url", req.URL.String())
	if requestBody != nil {
		trace.Log("request.body", requestBody)
	}

	resp, err := request.client.Do(req)
	if err != nil {
		return nil, respCode, err
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	respCode = resp.StatusCode
	trace.SetTag("response.code", respCode)
	trace.Log("response.body", respBody)
	if err != nil {
		return respBody, respCode, err
	}

	if respCode >= request.httpErrorCodeThreshold {
		err = errors.New(resp.Status)
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			err = errors.New(errResp.Message)
		}
		return respBody, respCode, err
	}

	return respBody, respCode, nil
}
