package auth

import (
	"testing"
	"time"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash, "hash must not be the plaintext")

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret")
	user := &models.User{ID: "user-1", Role: models.RoleAdmin}

	signed, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-a").Issue(&models.User{ID: "user-1", Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTampered(t *testing.T) {
	tokens := NewTokenService("test-secret")
	signed, err := tokens.Issue(&models.User{ID: "user-1", Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = tokens.Parse(signed + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenService("test-secret")

	claims := Claims{
		UserID: "user-1",
		Role:   models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMissingSubject(t *testing.T) {
	claims := Claims{
		Role: models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenService("test-secret").Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
