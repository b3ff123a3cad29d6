package logger_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/golangid/nearchat/logger"
	"go.uber.org/zap/zapcore"
)

func TestInitZap(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogI("test message")

	if !bytes.Contains(logOutput.Bytes(), []byte("test message")) {
		t.Error("Expected log message not found")
	}
}

func TestLog(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.Log(zapcore.InfoLevel, "testing log", "test_context", "test_scope")

	if !bytes.Contains(logOutput.Bytes(), []byte(`"testing log"`)) {
		t.Error("Expected log message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"scope":"test_scope"`)) {
		t.Error("Expected scope not found")
	}
}

func TestLogLevel(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput), logger.OptionSetLevel(zapcore.WarnLevel))

	logger.Log(zapcore.InfoLevel, "hidden", "ctx", "scope")
	logger.Log(zapcore.WarnLevel, "shown", "ctx", "scope")

	if bytes.Contains(logOutput.Bytes(), []byte("hidden")) {
		t.Error("Info message must be filtered")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte("shown")) {
		t.Error("Expected warn message not found")
	}
}

func TestLogIfError(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogIfError(nil)
	if logOutput.Len() != 0 {
		t.Error("Nil error must not be logged")
	}

	logger.LogIfError(io.EOF)
	if !bytes.Contains(logOutput.Bytes(), []byte("EOF")) {
		t.Error("Expected error message not found")
	}
}

func TestLogEf(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogEf("formatted error: %s", "something went wrong")

	if !bytes.Contains(logOutput.Bytes(), []byte("formatted error: something went wrong")) {
		t.Error("Expected formatted error message not found")
	}
}

func TestLogWithField(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(logOutput))

	logger.LogWithField(zapcore.InfoLevel, map[string]interface{}{
		"message": "test log with fields",
		"context": "test_context",
	})

	if !bytes.Contains(logOutput.Bytes(), []byte("test log with fields")) {
		t.Error("Expected message not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context field not found in log output")
	}
}
