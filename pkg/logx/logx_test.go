package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextDefaults(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWithContextRoundtrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestWithOperationTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithContext(context.Background(), logger)

	ctx = WithOperation(ctx, "search")
	FromContext(ctx).Debug("record skipped")

	out := buf.String()
	assert.Contains(t, out, "op=search")
	assert.Contains(t, out, "op_id=")
}

func TestNewLevels(t *testing.T) {
	assert.True(t, New("debug").Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, New("warn").Enabled(context.Background(), slog.LevelInfo))
	// Unknown names mean info.
	assert.True(t, New("verbose").Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, New("verbose").Enabled(context.Background(), slog.LevelDebug))
}
