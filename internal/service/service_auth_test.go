package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazakov/go-blog/internal/config"
	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/store"
	"github.com/mkazakov/go-blog/internal/utils"
	"github.com/mkazakov/go-blog/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

// noUser is a findUserByUsernameFn behaving like an empty table.
func noUser(ctx context.Context, username string) (models.User, error) {
	return models.User{}, store.ErrUserNotFound
}

func newTestAuthService(repo store.UserRepository) AuthService {
	// MinCost keeps bcrypt cheap in tests
	return NewAuthService(repo, config.App{BcryptCost: 4}, logger.Nop())
}

// ─────────────────────────────────────────────
// Register: validation order
// ─────────────────────────────────────────────

// TestRegister_EmptyUsername verifies that an empty username fails first and
// that no repository call is made.
func TestRegister_EmptyUsername(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("no repository call expected on validation failure")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrUsernameRequired)
}

// TestRegister_EmptyPassword verifies the password check runs after the
// username check and also short-circuits the store.
func TestRegister_EmptyPassword(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("no repository call expected on validation failure")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "a", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

// TestRegister_UsernameTaken verifies that an existing username is rejected
// without inserting anything.
func TestRegister_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("no insert expected when the username is taken")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "test", "test")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

// TestRegister_Success verifies the happy path: existence check, bcrypt
// hashing, insert.
func TestRegister_Success(t *testing.T) {
	var inserted models.User
	repo := &mockUserRepository{
		findUserByUsernameFn: noUser,
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			inserted = user
			user.UserID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "a", "a")
	require.NoError(t, err)

	assert.Equal(t, int64(7), registered.UserID)
	assert.Equal(t, "a", inserted.Username)
	assert.NotEqual(t, "a", inserted.PasswordHash, "plaintext must never reach the store")
	assert.True(t, utils.VerifyPassword(inserted.PasswordHash, "a"))
}

// TestRegister_LostUniquenessRace verifies that a unique violation surfaced
// by the insert (after the pre-check passed) still maps to ErrUsernameTaken.
func TestRegister_LostUniquenessRace(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: noUser,
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "test", "test")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

// TestRegister_StorageError verifies that an unexpected storage failure is
// propagated wrapped, not swallowed.
func TestRegister_StorageError(t *testing.T) {
	storageErr := errors.New("db is down")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, storageErr
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "a", "a")
	assert.ErrorIs(t, err, storageErr)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_UnknownUsername(t *testing.T) {
	repo := &mockUserRepository{findUserByUsernameFn: noUser}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ghost", "test")
	assert.ErrorIs(t, err, ErrIncorrectUsername)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("test", 4)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "test", "wrong")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("test", 4)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: username, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "test", "test")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "test", user.Username)
}

func TestLogin_StorageError(t *testing.T) {
	storageErr := errors.New("db is down")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, storageErr
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "test", "test")
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrIncorrectUsername)
}

// ─────────────────────────────────────────────
// UserByID
// ─────────────────────────────────────────────

func TestUserByID_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "test"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.UserByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "test", user.Username)
}

// TestUserByID_Deleted verifies that a stale id keeps its not-found identity
// through wrapping, so the preload can match it with errors.Is.
func TestUserByID_Deleted(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.UserByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
