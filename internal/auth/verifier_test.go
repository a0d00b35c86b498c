package auth_test

import (
	"testing"
	"time"

	"scenario-server/internal/auth"
	"scenario-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_VerifyToken(t *testing.T) {
	secret := []byte("test-secret")
	verifier := auth.NewVerifier(secret)
	userID := uuid.New()

	t.Run("Issued token round-trips", func(t *testing.T) {
		token, err := verifier.IssueToken(userID, nil)
		require.NoError(t, err)

		gotID, err := verifier.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
	})

	t.Run("Extra claims do not interfere", func(t *testing.T) {
		token, err := verifier.IssueToken(userID, map[string]any{
			"exp": time.Now().Add(time.Hour).Unix(),
			"iss": "auth-service",
		})
		require.NoError(t, err)

		gotID, err := verifier.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
	})

	t.Run("Wrong secret is invalid", func(t *testing.T) {
		other := auth.NewVerifier([]byte("other-secret"))
		token, err := other.IssueToken(userID, nil)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("Garbage is malformed", func(t *testing.T) {
		_, err := verifier.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := verifier.IssueToken(userID, map[string]any{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, models.ErrTokenExpired)
	})

	t.Run("Missing user_id claim is invalid", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
		token, err := raw.SignedString(secret)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("Non-uuid user_id is invalid", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "42"})
		token, err := raw.SignedString(secret)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("Unexpected signing algorithm is rejected", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": userID.String()})
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})
}
