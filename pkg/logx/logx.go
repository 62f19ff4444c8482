// Package logx carries a contextual slog.Logger through operation contexts,
// so per-record diagnostics stay attached to the operation that produced
// them.
package logx

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithOperation attaches a logger carrying the operation name and a fresh
// correlation id. Every CLI command starts its context this way.
func WithOperation(ctx context.Context, op string) context.Context {
	l := FromContext(ctx).With("op", op, "op_id", uuid.NewString())
	return WithContext(ctx, l)
}

// New builds a text logger writing to stderr at the given level name
// (debug, info, warn, error; anything else means info).
func New(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
