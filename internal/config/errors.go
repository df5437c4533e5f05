package config

import "errors"

var (
	// ErrNoSessionSecret is returned by validation when no session cookie
	// signing secret was provided by any configuration source.
	ErrNoSessionSecret = errors.New("session secret is not configured")

	// ErrNoDatabaseDSN is returned by validation when no database DSN was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
