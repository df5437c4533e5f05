// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, and other common operations.
package utils

import (
	"context"

	"github.com/mkazakov/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key used to store the resolved request identity
// in the context. Used together with GetCurrentUserFromContext for type-safe
// retrieval of the current user from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CurrentUserCtxKey, &user)
var CurrentUserCtxKey = contextKey("currentUser")

// GetCurrentUserFromContext retrieves the resolved request identity from the
// context.
//
// Returns the *models.User and an ok flag:
//   - ok == true: an identity was resolved for this request
//   - ok == false: the request is anonymous (no value, nil value, or an
//     unexpected type)
func GetCurrentUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
