package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_MergePriority verifies that earlier sources win: a later config
// only fills fields the earlier ones left empty.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{SessionSecret: "first"},
			Storage: Storage{DB: DB{DSN: "first.db"}},
		},
		&StructuredConfig{
			App:     App{SessionSecret: "second", BcryptCost: 10},
			Storage: Storage{DB: DB{DSN: "second.db"}},
			Server:  Server{HTTPAddress: "localhost:9000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first", cfg.App.SessionSecret)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	// fields absent from the first source are taken from the second
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestBuild_ValidationFailures(t *testing.T) {
	t.Run("missing session secret", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{
			Storage: Storage{DB: DB{DSN: "blog.db"}},
		})

		_, err := b.build()
		assert.ErrorIs(t, err, ErrNoSessionSecret)
	})

	t.Run("missing dsn", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{
			App: App{SessionSecret: "secret"},
		})

		_, err := b.build()
		assert.ErrorIs(t, err, ErrNoDatabaseDSN)
	})
}
