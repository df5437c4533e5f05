package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestHashPassword_RoundTrip verifies that a hashed password always verifies
// against the plaintext it was produced from and never against another one.
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "not-the-secret"))
}

// TestHashPassword_NotPlaintext verifies that the stored value is a hash,
// not the plaintext, and that each call salts independently.
func TestHashPassword_NotPlaintext(t *testing.T) {
	first, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret", first)
	assert.NotEqual(t, first, second, "fresh salt expected on every hash")
}

// TestHashPassword_CostFallback verifies that an out-of-range cost falls back
// to bcrypt's default instead of failing.
func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("secret", -1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

// TestVerifyPassword_InvalidHash verifies that garbage in place of a hash is
// just a failed verification, not a panic.
func TestVerifyPassword_InvalidHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret"))
}
