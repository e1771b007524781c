package logger

import "context"

// LogCtx holds request-scoped values copied onto every record.
type LogCtx struct {
	Action    string
	RequestID string
}

type logCtxKeyStruct struct{}

var logCtxKey = &logCtxKeyStruct{}

// WithAction adds or replaces the action name in the context.
func WithAction(ctx context.Context, action string) context.Context {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	lc.Action = action
	return context.WithValue(ctx, logCtxKey, lc)
}

// WithRequestID adds or replaces the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	lc.RequestID = requestID
	return context.WithValue(ctx, logCtxKey, lc)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	lc, _ := ctx.Value(logCtxKey).(LogCtx)
	return lc.RequestID
}
