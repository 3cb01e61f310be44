package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	InitJWT("test-secret")
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", string(hash))

	assert.True(t, CheckPassword("hunter22", string(hash)))
	assert.False(t, CheckPassword("wrong", string(hash)))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("7", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseJWTRejectsTampering(t *testing.T) {
	token, err := GenerateJWT("7", "customer")
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.jwt")
	assert.Error(t, err)
}
