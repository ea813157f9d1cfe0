package utils

import (
	"errors"
	"testing"
	"time"

	"transferd/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "unit-test-secret")

	token, err := GenerateToken(42, "user@example.com", types.ROLE_CLIENT)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, types.ROLE_CLIENT, claims.Role)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := GenerateToken(1, "user@example.com", types.ROLE_CLIENT)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "unit-test-secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "unit-test-secret")

	claims := &types.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "unit-test-secret")
	token, err := GenerateToken(1, "user@example.com", types.ROLE_CLIENT)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}

func TestFilterColumns(t *testing.T) {
	data := map[string]any{
		"name":      "Standard",
		"features":  []any{"wifi", "water"},
		"is_active": false,
		"id":        99,
		"bogus":     "ignored",
	}
	updates := FilterColumns(data, []string{"name", "features", "is_active"})

	assert.Len(t, updates, 3)
	assert.Equal(t, "Standard", updates["name"])
	assert.Equal(t, false, updates["is_active"])
	assert.NotContains(t, updates, "id")
	assert.NotContains(t, updates, "bogus")

	wrapped, ok := updates["features"].(types.JSONBAny)
	require.True(t, ok)
	assert.Equal(t, []any{"wifi", "water"}, wrapped.Inner)
}

func TestFilterColumnsEmpty(t *testing.T) {
	updates := FilterColumns(map[string]any{"other": 1}, []string{"name"})
	assert.Empty(t, updates)
}
