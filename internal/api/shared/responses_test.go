package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs swaps the default logger for one writing into a buffer at
// debug level and returns a getter plus a restore func.
func captureLogs() (func() string, func()) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	old := slog.Default()
	slog.SetDefault(logger)
	return func() string { return buf.String() }, func() { slog.SetDefault(old) }
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	w := httptest.NewRecorder()

	payload := map[string]interface{}{
		"topic":   "tafels van 7",
		"subject": "Wiskunde",
		"isMath":  true,
	}
	RespondWithJSON(w, req, http.StatusCreated, payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, "tafels van 7", decoded["topic"])
	assert.Equal(t, "Wiskunde", decoded["subject"])
	assert.Equal(t, true, decoded["isMath"])
}

func TestRespondWithJSONNilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestRespondWithJSONEncodingFailure(t *testing.T) {
	getLogs, restore := captureLogs()
	defer restore()

	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	w := httptest.NewRecorder()

	// A channel cannot be JSON-encoded; the status is already written, so
	// the failure can only be logged.
	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"items": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, getLogs(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	t.Run("carries trace ID from context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), TraceIDKey, "trace-123")
		req := httptest.NewRequest(http.MethodPost, "/api/games", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusBadRequest, "A topic or an image is required")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "A topic or an image is required", resp.Error)
		assert.Equal(t, "trace-123", resp.TraceID)
	})

	t.Run("no trace ID in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
		w := httptest.NewRecorder()

		RespondWithError(w, req, http.StatusUnauthorized, "Invalid token")

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid token", resp.Error)
		assert.Empty(t, resp.TraceID)
	})
}

func TestRespondWithErrorAndLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		message   string
		elevate   bool
		wantLevel string
	}{
		{
			name:      "server error logs at ERROR",
			status:    http.StatusInternalServerError,
			message:   "Generation service is misconfigured",
			wantLevel: "level=ERROR",
		},
		{
			name:      "client error logs at DEBUG",
			status:    http.StatusUnprocessableEntity,
			message:   "Failed to generate bingo items, please try again",
			wantLevel: "level=DEBUG",
		},
		{
			name:      "elevated client error logs at WARN",
			status:    http.StatusUnauthorized,
			message:   "Invalid credentials",
			elevate:   true,
			wantLevel: "level=WARN",
		},
		{
			name:      "rate limiting always logs at WARN",
			status:    http.StatusTooManyRequests,
			message:   "Too many requests",
			wantLevel: "level=WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			getLogs, restore := captureLogs()
			defer restore()

			ctx := context.WithValue(context.Background(), TraceIDKey, "trace-123")
			req := httptest.NewRequest(http.MethodPost, "/api/games", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			cause := errors.New("gemini call failed")
			if tc.elevate {
				RespondWithErrorAndLog(w, req, tc.status, tc.message, cause, WithElevatedLogLevel())
			} else {
				RespondWithErrorAndLog(w, req, tc.status, tc.message, cause)
			}

			assert.Equal(t, tc.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.message, resp.Error)
			assert.Equal(t, "trace-123", resp.TraceID)

			logs := getLogs()
			assert.Contains(t, logs, tc.wantLevel)
			assert.Contains(t, logs, "trace_id=trace-123")
			assert.Contains(t, logs, "error_type=")
		})
	}
}

func TestRespondWithErrorAndLogRedactsCause(t *testing.T) {
	getLogs, restore := captureLogs()
	defer restore()

	req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
	w := httptest.NewRecorder()

	cause := errors.New("generate content: AIzaSyD4X8mNop1234567890qrstuvwx unauthorized")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Generation service is misconfigured", cause)

	// The raw cause never reaches the client and reaches the logs only
	// after redaction.
	assert.NotContains(t, w.Body.String(), "AIza")
	assert.NotContains(t, getLogs(), "AIzaSyD4X8mNop1234567890qrstuvwx")
	assert.Contains(t, getLogs(), "[REDACTED_KEY]")
}

func TestWithElevatedLogLevel(t *testing.T) {
	opts := responseOptions{}
	WithElevatedLogLevel()(&opts)
	assert.True(t, opts.elevateLogLevel)
}
