package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvanloon/bingo-api/internal/config"
)

const testSecret = "test-jwt-secret-that-is-32-chars-long"

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}
}

// newFixedTimeService builds a service whose clock is pinned to the given
// time, so expiry scenarios are deterministic.
func newFixedTimeService(t *testing.T, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	impl.timeFunc = now
	return impl
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		cfg := testAuthConfig()
		cfg.JWTSecret = "too-short"
		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	svc := newFixedTimeService(t, func() time.Time { return fixedTime })

	t.Run("round trips access token claims", func(t *testing.T) {
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "access", claims.TokenType)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.NotEmpty(t, claims.ID)
		assert.Equal(t, fixedTime.Add(60*time.Minute), claims.ExpiresAt)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with different key", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret-that-is-also-32-chars"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		// Validate from well past expiry plus clock skew.
		later := newFixedTimeService(t, func() time.Time {
			return fixedTime.Add(61*time.Minute + svc.clockSkew)
		})
		_, err = later.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("tolerates expiry within clock skew", func(t *testing.T) {
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		slightlyLater := newFixedTimeService(t, func() time.Time {
			return fixedTime.Add(60*time.Minute + 30*time.Second)
		})
		_, err = slightlyLater.ValidateToken(context.Background(), token)
		assert.NoError(t, err)
	})

	t.Run("rejects refresh token presented as access token", func(t *testing.T) {
		refresh, err := svc.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), refresh)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	svc := newFixedTimeService(t, func() time.Time { return fixedTime })

	t.Run("round trips refresh token claims", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "refresh", claims.TokenType)
		assert.Equal(t, fixedTime.Add(1440*time.Minute), claims.ExpiresAt)
	})

	t.Run("rejects access token presented as refresh token", func(t *testing.T) {
		access, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		_, err = svc.ValidateRefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("rejects expired refresh token", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		later := newFixedTimeService(t, func() time.Time {
			return fixedTime.Add(1441*time.Minute + svc.clockSkew)
		})
		_, err = later.ValidateRefreshToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})

	t.Run("rejects malformed refresh token", func(t *testing.T) {
		_, err := svc.ValidateRefreshToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	hashed := mustHash(t, "correct horse battery staple")

	assert.NoError(t, verifier.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, verifier.Compare(hashed, "wrong password"))
	assert.Error(t, verifier.Compare("not-a-hash", "anything"))
}
