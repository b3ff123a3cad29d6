package candishared

import "context"

// ContextKey represent Key of all context
type ContextKey string

const (
	// ContextKeyRequestID context key
	ContextKeyRequestID ContextKey = "requestID"

	// ContextKeySkipTracer context key, disable span for given context
	ContextKeySkipTracer ContextKey = "skipTracer"
)

// SetToContext will set context with specific key
func SetToContext(ctx context.Context, key ContextKey, value interface{}) context.Context {
	return context.WithValue(ctx, key, value)
}

// GetValueFromContext will get context with specific key
func GetValueFromContext(ctx context.Context, key ContextKey) interface{} {
	return ctx.Value(key)
}

// GetRequestID get request id from context, empty if not set
func GetRequestID(ctx context.Context) string {
	id, _ := GetValueFromContext(ctx, ContextKeyRequestID).(string)
	return id
}
