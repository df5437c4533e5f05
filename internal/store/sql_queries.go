package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/mkazakov/go-blog/models"
)

// userColumns is the canonical column order used by every user query and
// matched by every row scan in this package.
var userColumns = []string{"user_id", "username", "password_hash", "created_at"}

// insertUserQuery builds the INSERT for a new user. The RETURNING clause
// hands back the server-assigned user_id and created_at so the caller
// receives the canonical database representation of the account.
func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return squirrel.Insert(user.TableName()).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING user_id, username, password_hash, created_at").
		PlaceholderFormat(db.placeholder()).
		ToSql()
}

// selectUserByUsernameQuery builds the lookup used by login and by the
// registration pre-check.
func (db *DB) selectUserByUsernameQuery(username string) (string, []any, error) {
	return squirrel.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(db.placeholder()).
		ToSql()
}

// selectUserByIDQuery builds the lookup used by the per-request identity
// preload.
func (db *DB) selectUserByIDQuery(userID int64) (string, []any, error) {
	return squirrel.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(db.placeholder()).
		ToSql()
}
