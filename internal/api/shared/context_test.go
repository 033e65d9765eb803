package shared

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	withTrace := SetTraceID(ctx)
	traceID := GetTraceID(withTrace)
	assert.Len(t, traceID, 2*TraceIDLength)
	_, err := hex.DecodeString(traceID)
	require.NoError(t, err)

	// The parent context stays untouched.
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceIDWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := generateTraceID()
		require.Len(t, id, 2*TraceIDLength)
		assert.False(t, seen[id], "trace IDs must not repeat")
		seen[id] = true
	}
}

func TestFallbackTraceID(t *testing.T) {
	first := generateFallbackTraceID()
	require.Len(t, first, 2*TraceIDLength)
	_, err := hex.DecodeString(first)
	require.NoError(t, err)

	// The fallback is time-derived; a later call yields a different ID.
	time.Sleep(time.Millisecond)
	assert.NotEqual(t, first, generateFallbackTraceID())
}
