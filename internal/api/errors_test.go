package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jvanloon/bingo-api/internal/domain"
	"github.com/jvanloon/bingo-api/internal/generation"
	"github.com/jvanloon/bingo-api/internal/service"
	"github.com/jvanloon/bingo-api/internal/service/auth"
	"github.com/jvanloon/bingo-api/internal/store"
)

func testAPILogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"game not found", store.ErrGameNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid mode", domain.ErrInvalidMode, http.StatusBadRequest},
		{"invalid count", service.ErrInvalidCount, http.StatusBadRequest},
		{"generation failed", generation.ErrGenerationFailed, http.StatusUnprocessableEntity},
		{"content blocked", generation.ErrContentBlocked, http.StatusUnprocessableEntity},
		{"invalid config", generation.ErrInvalidConfig, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped generation failure",
			fmt.Errorf("failed to generate items: %w", generation.ErrGenerationFailed),
			http.StatusUnprocessableEntity,
		},
		{
			"wrapped not found",
			fmt.Errorf("failed to retrieve game: %w", store.ErrGameNotFound),
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("never leaks raw error text", func(t *testing.T) {
		t.Parallel()
		raw := errors.New("pq: duplicate key value violates unique constraint users_email_key")
		msg := GetSafeErrorMessage(raw)
		assert.NotContains(t, msg, "pq:")
		assert.NotContains(t, msg, "users_email_key")
	})

	t.Run("maps known errors to friendly text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Game not found", GetSafeErrorMessage(store.ErrGameNotFound))
		assert.Equal(t, "You do not own this game", GetSafeErrorMessage(service.ErrNotOwned))
		assert.Equal(t,
			"Failed to generate bingo items, please try again",
			GetSafeErrorMessage(generation.ErrGenerationFailed))
		assert.Equal(t,
			"Generation service is misconfigured",
			GetSafeErrorMessage(generation.ErrInvalidConfig))
	})

	t.Run("handles nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	err := validate.Struct(RegisterRequest{Email: "nope", Password: "sterk-wachtwoord-123"})
	assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))

	err = validate.Struct(RegisterRequest{Email: "juf@school.nl", Password: "kort"})
	assert.Equal(t, "Invalid Password: too short", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
