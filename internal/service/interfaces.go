package service

import (
	"context"

	"github.com/mkazakov/go-blog/models"
)

// AuthService implements the credential contract of the application:
// registration with its validation order, login with per-credential error
// reporting, and identity resolution for the per-request preload.
type AuthService interface {
	// Register creates a new account. Validation short-circuits in order:
	// empty username, empty password, username already registered.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the given credentials and returns the matching user.
	Login(ctx context.Context, username, password string) (models.User, error)

	// UserByID resolves a session-carried user id to its account.
	UserByID(ctx context.Context, userID int64) (models.User, error)
}
