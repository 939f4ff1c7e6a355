package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: "verbose"})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallbacks(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	assert.Same(t, slog.Default(), FromContext(ctx))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
