package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciobenjamin700/regexm/pkg/config"
)

type defaultsConfig struct {
	Lang    string `env:"TEST_REGEXM_LANG_DEFAULT" envDefault:"pt-BR"`
	Workers int    `env:"TEST_REGEXM_WORKERS_DEFAULT" envDefault:"4"`
	NoColor bool   `env:"TEST_REGEXM_NO_COLOR_DEFAULT"`
}

type overrideConfig struct {
	Lang    string `env:"TEST_REGEXM_LANG_OVERRIDE" envDefault:"pt-BR"`
	Workers int    `env:"TEST_REGEXM_WORKERS_OVERRIDE" envDefault:"4"`
}

type cachedConfig struct {
	Value string `env:"TEST_REGEXM_CACHED" envDefault:"first"`
}

type resetConfig struct {
	Value string `env:"TEST_REGEXM_RESET"`
}

type requiredConfig struct {
	Value string `env:"TEST_REGEXM_REQUIRED,required"`
}

type badTypeConfig struct {
	Workers int `env:"TEST_REGEXM_BAD_INT"`
}

type envFileConfig struct {
	Value string `env:"TEST_REGEXM_FROM_FILE"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "pt-BR", cfg.Lang)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.NoColor)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_REGEXM_LANG_OVERRIDE", "en")
	t.Setenv("TEST_REGEXM_WORKERS_OVERRIDE", "8")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 8, cfg.Workers)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_REGEXM_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)
}

func TestReset(t *testing.T) {
	t.Setenv("TEST_REGEXM_RESET", "one")

	var cfg resetConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "one", cfg.Value)

	t.Setenv("TEST_REGEXM_RESET", "two")
	config.Reset()

	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "two", cfg.Value)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		// the failure is cached as well
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("TEST_REGEXM_BAD_INT", "four")

		var cfg badTypeConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
	assert.Panics(t, func() {
		var cfg *defaultsConfig
		config.MustLoad(cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_REGEXM_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_REGEXM_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
