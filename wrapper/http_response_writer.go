package wrapper

import (
	"bufio"
	"errors"
	"io"
	"net"
	"net/http"
)

// WrapHTTPResponseWriter wrapper
type WrapHTTPResponseWriter struct {
	statusCode int
	writer     io.Writer
	rw         http.ResponseWriter
}

// NewWrapHTTPResponseWriter init new wrapper for http response writter
func NewWrapHTTPResponseWriter(w io.Writer, httpResponseWriter http.ResponseWriter) *WrapHTTPResponseWriter {
	// Default the status code to 200
	return &WrapHTTPResponseWriter{statusCode: http.StatusOK, writer: io.MultiWriter(w, httpResponseWriter), rw: httpResponseWriter}
}

// StatusCode give a way to get the Code
func (w *WrapHTTPResponseWriter) StatusCode() int {
	return w.statusCode
}

// Header Satisfy the http.ResponseWriter interface
func (w *WrapHTTPResponseWriter) Header() http.Header {
	return w.rw.Header()
}

func (w *WrapHTTPResponseWriter) Write(data []byte) (int, error) {
	return w.writer.Write(data)
}

// WriteHeader method
func (w *WrapHTTPResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.rw.WriteHeader(statusCode)
}

// Flush implement http.Flusher
func (w *WrapHTTPResponseWriter) Flush() {
	if f, ok := w.rw.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack implement http.Hijacker, websocket upgrade take over the connection
func (w *WrapHTTPResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.rw.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not implement http.Hijacker")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}
