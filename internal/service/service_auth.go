package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkazakov/go-blog/internal/config"
	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/store"
	"github.com/mkazakov/go-blog/internal/utils"
	"github.com/mkazakov/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords at
	// registration. Zero selects bcrypt's default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Validation short-circuits on the first failure, in order: empty username
// (ErrUsernameRequired), empty password (ErrPasswordRequired), username
// already present (store.ErrUsernameTaken). No mutation happens on any
// validation failure.
//
// On success the password is hashed with bcrypt (fresh random salt per call)
// and the account is inserted. The existence pre-check races with concurrent
// registrations; the UNIQUE constraint is the authoritative guard and a lost
// race also comes back as store.ErrUsernameTaken.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrUsernameRequired
	}
	if password == "" {
		return models.User{}, ErrPasswordRequired
	}

	_, err := a.userRepository.FindUserByUsername(ctx, username)
	if err == nil {
		log.Debug().Str("username", username).Msg("username is already registered")
		return models.User{}, store.ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", username).Msg("user existence check failed")
		return models.User{}, fmt.Errorf("user existence check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", username).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and verifies the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrIncorrectUsername if no account with that username exists.
//   - ErrIncorrectPassword if the password does not match the stored hash.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("unknown username")
			return models.User{}, ErrIncorrectUsername
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Debug().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrIncorrectPassword
	}

	return foundUser, nil
}

// UserByID resolves a user id carried by the session cookie to its account.
// A missing account surfaces as store.ErrUserNotFound; the caller decides
// whether that is an error (it is not for the identity preload).
func (a *authService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
