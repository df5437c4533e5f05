// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Kazakov

package config

// validate checks that the final merged [StructuredConfig] is usable before
// the application starts.
//
// Two settings are hard requirements: the session secret (without it the
// session cookie cannot be signed and every login would be rejected on the
// next request) and the database DSN.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return ErrNoSessionSecret
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
