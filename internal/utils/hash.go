package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt using the given cost.
// Every call produces a different hash for the same input because bcrypt
// embeds a fresh random salt.
//
// A cost outside the range supported by bcrypt is replaced with
// bcrypt.DefaultCost, so callers may pass 0 to get the default.
//
// Parameters:
//
//	password - plaintext password to hash
//	cost     - bcrypt cost factor (work factor), 0 for the default
//
// Returns:
//
//	string - the bcrypt hash, safe to store
//	error  - non-nil if bcrypt rejects the input (e.g. password longer than
//	         72 bytes)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the given bcrypt hash.
//
// Example usage:
//
//	if !utils.VerifyPassword(user.PasswordHash, submitted) {
//	    // wrong password
//	}
func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
