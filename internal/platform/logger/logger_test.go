package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvanloon/bingo-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"WARN", false}, // case-insensitive
		{"", true},
		{"verbose", true},
	}

	for _, tc := range testCases {
		t.Run("level_"+tc.level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			if tc.wantErr {
				assert.Error(t, err, "Setup should reject level %q", tc.level)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err, "Setup should accept level %q", tc.level)
			require.NotNil(t, logger, "Setup should return a logger")
			assert.Same(t, logger, slog.Default(), "Setup should install the logger as default")
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{
			name: "nil context falls back to default",
			ctx:  nil,
			want: defaultLogger,
		},
		{
			name: "empty context falls back to default",
			ctx:  context.Background(),
			want: defaultLogger,
		},
		{
			name: "context with logger returns it",
			ctx:  WithLogger(context.Background(), custom),
			want: custom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FromContextOrDefault(tc.ctx, defaultLogger)
			assert.Same(t, tc.want, result)
		})
	}
}

func TestFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
