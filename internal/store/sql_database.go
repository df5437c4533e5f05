package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/mkazakov/go-blog/internal/config"
	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/migrations"
)

// Dialect identifies the SQL backend behind a [DB]. It selects the goose
// migration set, the squirrel placeholder format, and the driver error
// mapping.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps a *sql.DB together with its dialect so that repositories can stay
// backend-agnostic.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewConnect opens a database connection for the configured DSN.
// A "postgres://" or "postgresql://" URI selects the PostgreSQL backend; any
// other value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema migrations for the connection's
// dialect. It must be called before the first repository use.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// placeholder returns the squirrel placeholder format matching the dialect:
// $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholder() squirrel.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return squirrel.Dollar
	}

	return squirrel.Question
}
