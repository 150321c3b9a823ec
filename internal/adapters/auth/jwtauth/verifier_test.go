package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims tokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifier(t *testing.T) {
	v, err := NewVerifier("super-secret")
	require.NoError(t, err)

	t.Run("token valido devuelve claims", func(t *testing.T) {
		signed := signToken(t, "super-secret", tokenClaims{
			Email:    "ana@example.com",
			ClinicID: "clinic-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := v.Verify(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, "clinic-1", claims.ClinicID)
	})

	t.Run("token vencido falla", func(t *testing.T) {
		signed := signToken(t, "super-secret", tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})

		_, err := v.Verify(context.Background(), signed)
		assert.Error(t, err)
	})

	t.Run("firma ajena falla", func(t *testing.T) {
		signed := signToken(t, "otro-secret", tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		})

		_, err := v.Verify(context.Background(), signed)
		assert.Error(t, err)
	})

	t.Run("sin subject falla", func(t *testing.T) {
		signed := signToken(t, "super-secret", tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := v.Verify(context.Background(), signed)
		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("token vacio falla", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrTokenEmpty)
	})

	t.Run("secret vacio no construye", func(t *testing.T) {
		_, err := NewVerifier("  ")
		assert.ErrorIs(t, err, ErrNoSecret)
	})
}
