package wrapper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/golangid/nearchat/candihelper"
	"github.com/golangid/nearchat/candishared"
	"github.com/golangid/nearchat/config/env"
	"github.com/golangid/nearchat/logger"
	"github.com/golangid/nearchat/tracer"
	"github.com/labstack/echo"
)

// HTTPMiddlewareTracerConfig config
type HTTPMiddlewareTracerConfig struct {
	MaxLogSize  int
	ExcludePath map[string]struct{}
}

// HTTPMiddlewareTracer echo middleware, start root span for each inbound request
func HTTPMiddlewareTracer(cfg HTTPMiddlewareTracerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, isExcludePath := cfg.ExcludePath[c.Path()]; isExcludePath {
				return next(c)
			}
			isDisableTrace, _ := strconv.ParseBool(req.Header.Get(candihelper.HeaderDisableTrace))
			if isDisableTrace {
				c.SetRequest(req.WithContext(candishared.SetToContext(req.Context(), candishared.ContextKeySkipTracer, true)))
				return next(c)
			}

			header := map[string]string{}
			for key := range req.Header {
				header[key] = req.Header.Get(key)
			}

			trace, ctx := tracer.StartTraceFromHeader(req.Context(), fmt.Sprintf("%s %s", req.Method, c.Path()), header)
			defer func() {
				trace.SetTag("trace_id", tracer.GetTraceID(ctx))
				trace.Finish()
			}()

			httpDump, _ := httputil.DumpRequest(req, false)
			trace.SetTag("http.url_path", req.URL.Path)
			trace.SetTag("http.method", req.Method)
			trace.Log("http.request", httpDump)

			if req.Body != nil {
				body, _ := io.ReadAll(req.Body)
				if len(body) < cfg.MaxLogSize {
					trace.Log("request.body", body)
				} else {
					trace.Log("request.body.size", len(body))
				}
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}

			resBody := &bytes.Buffer{}
			respWriter := NewWrapHTTPResponseWriter(resBody, c.Response().Writer)
			c.Response().Writer = respWriter
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				trace.SetError(err)
				logger.LogIfError(err)
			}

			trace.SetTag("http.status_code", respWriter.StatusCode())
			if respWriter.StatusCode() >= http.StatusBadRequest {
				trace.SetError(fmt.Errorf("resp.code:%d", respWriter.StatusCode()))
			}
			if resBody.Len() < cfg.MaxLogSize {
				trace.Log("response.body", resBody.String())
			} else {
				trace.Log("response.body.size", resBody.Len())
			}
			return err
		}
	}
}

// HTTPHandlerDefaultRoot default root http handler
func HTTPHandlerDefaultRoot(c echo.Context) error {
	now := time.Now()
	payload := struct {
		BuildNumber string `json:"build_number,omitempty"`
		Message     string `json:"message,omitempty"`
		Hostname    string `json:"hostname,omitempty"`
		Timestamp   string `json:"timestamp,omitempty"`
		StartAt     string `json:"start_at,omitempty"`
		Uptime      string `json:"uptime,omitempty"`
	}{
		Message:   fmt.Sprintf("Service %s up and running", env.BaseEnv().ServiceName),
		Timestamp: now.Format(time.RFC3339Nano),
	}

	if startAt, err := time.Parse(time.RFC3339, env.BaseEnv().StartAt); err == nil {
		payload.StartAt = env.BaseEnv().StartAt
		payload.Uptime = now.Sub(startAt).String()
	}
	if env.BaseEnv().BuildNumber != "" {
		payload.BuildNumber = env.BaseEnv().BuildNumber
	}
	if hostname, err := os.Hostname(); err == nil {
		payload.Hostname = hostname
	}
	return c.JSON(http.StatusOK, payload)
}

// HTTPHandlerMemstats calculate runtime statistic
func HTTPHandlerMemstats(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	data := struct {
		NumGoroutine int         `json:"num_goroutine"`
		Memstats     interface{} `json:"memstats"`
	}{
		runtime.NumGoroutine(), m,
	}
	return c.JSON(http.StatusOK, data)
}
