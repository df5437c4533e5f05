package store

import (
	"context"

	"github.com/mkazakov/go-blog/models"
)

// UserRepository is the persistence contract for user accounts. Accounts are
// immutable after creation; there are no update or delete operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
