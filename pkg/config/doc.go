// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct using field tags:
//
//	type Config struct {
//	    Lang     string `env:"REGEXM_LANG" envDefault:"pt-BR"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load caches the result per struct type, so every later call is a copy from
// memory. Call LoadEnv before the first Load to read extra .env files, and
// Reset in tests that change the environment between loads.
//
// Errors are sentinels comparable with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer and ErrLoadingEnvFile.
package config
