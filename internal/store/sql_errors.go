package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is the backend's unique-constraint
// violation. The UNIQUE(username) constraint is the authoritative guard
// against duplicate registrations, so repositories map this error to
// [ErrUsernameTaken] regardless of which backend produced it.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case DialectPostgres:
		return postgresErrorCode(err) == pgerrcode.UniqueViolation
	case DialectSQLite:
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) {
			return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
		}
	}

	return false
}

// postgresErrorCode extracts the PostgreSQL error code from a pgx driver
// error, or returns "" if err did not originate from the server.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
