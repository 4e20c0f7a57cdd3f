package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// requestFields are the per-request attributes attached to every Ctx* line.
type requestFields struct {
	requestID string
	userID    string
}

func fieldsFrom(ctx context.Context) requestFields {
	if ctx == nil {
		return requestFields{}
	}
	f, _ := ctx.Value(ctxKey{}).(requestFields)
	return f
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, ctxKey{}, f)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	f := fieldsFrom(ctx)
	f.userID = userID
	return context.WithValue(ctx, ctxKey{}, f)
}

// FromContext returns the global logger with request_id and user_id when known.
func FromContext(ctx context.Context) *slog.Logger {
	l := current()
	f := fieldsFrom(ctx)
	if f.requestID != "" {
		l = l.With("request_id", f.requestID)
	}
	if f.userID != "" {
		l = l.With("user_id", f.userID)
	}
	return l
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).DebugContext(ctx, msg, args...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).InfoContext(ctx, msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).WarnContext(ctx, msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, args...)
}

// CtxWithError logs at error level with err attached.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).ErrorContext(ctx, msg, append([]any{"error", err}, args...)...)
}
