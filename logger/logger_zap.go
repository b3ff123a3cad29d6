package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// InitZap logger with default writer to stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stdout},
		Level:       zapcore.DebugLevel,
	}

	for _, o := range opts {
		o(&opt)
	}

	encCfg := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey: "message",

		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	var coreOpt []zapcore.Core
	for _, w := range opt.MultiWriter {
		coreOpt = append(coreOpt, zapcore.NewCore(encCfg, zapcore.AddSync(w), opt.Level))
	}
	core := zapcore.NewTee(coreOpt...)

	mu.Lock()
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	mu.Unlock()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log func, context is the component name and scope is the operation
func Log(level zapcore.Level, message string, context string, scope string) {
	l := get()
	if l == nil {
		return
	}
	entry := l.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)

	setEntryType(level, entry, message)
}

// LogWithField func
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	l := get()
	if l == nil {
		return
	}

	var message interface{}
	var args []interface{}
	for k, v := range fields {
		if k == "message" {
			message = v
			continue
		}
		args = append(args, k, v)
	}
	setEntryType(level, l.With(args...), message)
}

// LogE error
func LogE(message string) {
	get().Error(message)
}

// LogEf error with format
func LogEf(format string, i ...interface{}) {
	get().Errorf(format, i...)
}

// LogI info
func LogI(message string) {
	get().Info(message)
}

// LogIf info with format
func LogIf(format string, i ...interface{}) {
	get().Infof(format, i...)
}

// LogIfError log error if err is not nil
func LogIfError(err error) {
	if err != nil {
		get().Error(err.Error())
	}
}

func setEntryType(level zapcore.Level, entry *zap.SugaredLogger, msg interface{}) {
	switch level {
	case zapcore.DebugLevel:
		entry.Debug(msg)
	case zapcore.InfoLevel:
		entry.Info(msg)
	case zapcore.WarnLevel:
		entry.Warn(msg)
	case zapcore.ErrorLevel:
		entry.Error(msg)
	case zapcore.FatalLevel:
		entry.Fatal(msg)
	case zapcore.PanicLevel:
		entry.Panic(msg)
	}
}
