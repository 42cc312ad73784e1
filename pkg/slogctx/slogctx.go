// Package slogctx carries a *slog.Logger through a context.Context.
package slogctx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// ContextWithLogger returns a copy of ctx that carries logger.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx. A context without one, or
// with a nil one, yields slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// With returns a copy of ctx whose logger carries the given attributes.
func With(ctx context.Context, args ...any) context.Context {
	return ContextWithLogger(ctx, FromContext(ctx).With(args...))
}
