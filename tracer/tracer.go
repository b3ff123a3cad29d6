package tracer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golangid/nearchat/candishared"
	"github.com/golangid/nearchat/codebase/interfaces"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type tracerImpl struct {
	ctx  context.Context
	span opentracing.Span
	tags map[string]interface{}
}

// StartTrace starting trace child span from parent span.
// Global tracer is noop until InitJaeger is called.
func StartTrace(ctx context.Context, operationName string) interfaces.Tracer {
	if ctx == nil {
		ctx = context.Background()
	}
	if skip, _ := candishared.GetValueFromContext(ctx, candishared.ContextKeySkipTracer).(bool); skip {
		return &noopTracer{ctx: ctx}
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, operationName)
	if requestID := candishared.GetRequestID(ctx); requestID != "" {
		span.SetTag("request_id", requestID)
	}
	return &tracerImpl{ctx: ctx, span: span}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (interfaces.Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// StartTraceFromHeader starting root span, continue remote span when header carry span context
func StartTraceFromHeader(ctx context.Context, operationName string, header map[string]string) (interfaces.Tracer, context.Context) {
	if skip, _ := candishared.GetValueFromContext(ctx, candishared.ContextKeySkipTracer).(bool); skip {
		return &noopTracer{ctx: ctx}, ctx
	}

	globalTracer := opentracing.GlobalTracer()
	var span opentracing.Span
	if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.TextMapCarrier(header)); err == nil {
		span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
	} else {
		span = globalTracer.StartSpan(operationName)
		ext.SpanKindRPCServer.Set(span)
	}
	ctx = opentracing.ContextWithSpan(ctx, span)
	if requestID := candishared.GetRequestID(ctx); requestID != "" {
		span.SetTag("request_id", requestID)
	}
	t := &tracerImpl{ctx: ctx, span: span}
	return t, ctx
}

// GetTraceID get trace id of active span in context, empty if no span
func GetTraceID(ctx context.Context) string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return ""
	}

	traceID := fmt.Sprintf("%+v", span.Context())
	if splits := strings.Split(traceID, ":"); len(splits) > 0 {
		return splits[0]
	}
	return traceID
}

func (t *tracerImpl) Context() context.Context {
	return t.ctx
}

func (t *tracerImpl) Tags() map[string]interface{} {
	if t.tags == nil {
		t.tags = make(map[string]interface{})
	}
	return t.tags
}

func (t *tracerImpl) SetTag(key string, value interface{}) {
	t.Tags()[key] = value
}

func (t *tracerImpl) InjectRequestHeader(header map[string]string) {
	opentracing.GlobalTracer().Inject(
		t.span.Context(),
		opentracing.HTTPHeaders,
		opentracing.TextMapCarrier(header),
	)
}

func (t *tracerImpl) SetError(err error) {
	if err == nil {
		return
	}
	ext.Error.Set(t.span, true)
	t.span.SetTag("error.value", err.Error())
}

func (t *tracerImpl) Log(key string, value interface{}) {
	t.span.LogKV(key, toValue(value))
}

func (t *tracerImpl) Finish(additionalTags ...map[string]interface{}) {
	for _, tags := range additionalTags {
		for k, v := range tags {
			t.SetTag(k, v)
		}
	}
	for k, v := range t.tags {
		t.span.SetTag(k, toValue(v))
	}
	t.span.Finish()
}

func toValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string, bool, int, int64, float64:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		b, _ := json.Marshal(val)
		return string(b)
	}
}

type noopTracer struct{ ctx context.Context }

func (n *noopTracer) Context() context.Context { return n.ctx }

func (n *noopTracer) Tags() map[string]interface{} { return map[string]interface{}{} }

func (n *noopTracer) SetTag(key string, value interface{}) {}

func (n *noopTracer) InjectRequestHeader(header map[string]string) {}

func (n *noopTracer) SetError(err error) {}

func (n *noopTracer) Log(key string, value interface{}) {}

func (n *noopTracer) Finish(additionalTags ...map[string]interface{}) {}
