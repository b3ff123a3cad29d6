package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/golangid/nearchat/candishared"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTrace(t *testing.T) {
	mt := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(prev)

	t.Run("Testcase #1: Span finished with tags and error", func(t *testing.T) {
		mt.Reset()
		ctx := candishared.SetToContext(context.Background(), candishared.ContextKeyRequestID, "req-1")
		trace, ctx := StartTraceWithContext(ctx, "router:route")
		assert.NotNil(t, opentracing.SpanFromContext(ctx))

		trace.SetTag("mode", "direct")
		trace.Log("message", []byte("hi"))
		trace.SetError(errors.New("unreachable"))
		trace.Finish(map[string]interface{}{"recipient": "bob"})

		spans := mt.FinishedSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "router:route", spans[0].OperationName)
		assert.Equal(t, "direct", spans[0].Tag("mode"))
		assert.Equal(t, "bob", spans[0].Tag("recipient"))
		assert.Equal(t, "req-1", spans[0].Tag("request_id"))
		assert.Equal(t, true, spans[0].Tag("error"))
	})

	t.Run("Testcase #2: Skip tracer", func(t *testing.T) {
		mt.Reset()
		ctx := candishared.SetToContext(context.Background(), candishared.ContextKeySkipTracer, true)
		trace := StartTrace(ctx, "skipped")
		trace.SetTag("a", 1)
		trace.Finish()
		assert.Empty(t, mt.FinishedSpans())
		assert.Equal(t, ctx, trace.Context())
	})

	t.Run("Testcase #3: Root span from header", func(t *testing.T) {
		mt.Reset()
		parent := mt.StartSpan("client")
		header := map[string]string{}
		require.NoError(t, mt.Inject(parent.Context(), opentracing.HTTPHeaders, opentracing.TextMapCarrier(header)))

		trace, ctx := StartTraceFromHeader(context.Background(), "POST /v1/messages", header)
		assert.NotEmpty(t, GetTraceID(ctx))
		trace.Finish()

		spans := mt.FinishedSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, parent.Context().(mocktracer.MockSpanContext).TraceID, spans[0].SpanContext.TraceID)
	})

	t.Run("Testcase #4: No span in context", func(t *testing.T) {
		assert.Equal(t, "", GetTraceID(context.Background()))
	})
}

func TestInitJaeger(t *testing.T) {
	prev := opentracing.GlobalTracer()
	defer opentracing.SetGlobalTracer(prev)

	closer, err := InitJaeger("nearchat",
		OptionSetAgentHost("127.0.0.1:6831"),
		OptionSetLevel("Testing"),
		OptionSetBuildNumberTag("42"),
	)
	require.NoError(t, err)
	assert.NotEqual(t, prev, opentracing.GlobalTracer())
	assert.NoError(t, closer.Disconnect(context.Background()))
}
