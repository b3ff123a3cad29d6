package tracer

import (
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger set jaeger as opentracing global tracer, returned closer flush remaining span
func InitJaeger(serviceName string, opts ...OptionFunc) (*Closer, error) {
	option := Option{AgentHost: "127.0.0.1:6831"}
	for _, opt := range opts {
		opt(&option)
	}

	if option.Level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(option.Level))
	}

	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:            false,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  option.AgentHost,
		},
		Tags: []opentracing.Tag{
			{Key: "num_cpu", Value: runtime.NumCPU()},
			{Key: "go_version", Value: runtime.Version()},
			{Key: "build_number", Value: option.BuildNumberTag},
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, fmt.Errorf("init jaeger tracer: %w", err)
	}
	opentracing.SetGlobalTracer(tracer)
	return &Closer{closer: closer}, nil
}

// Closer flush tracer on shutdown, implement interfaces.Closer
type Closer struct {
	closer io.Closer
}

// Disconnect method
func (c *Closer) Disconnect(ctx context.Context) error {
	return c.closer.Close()
}
