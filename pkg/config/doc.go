// Package config loads application configuration from environment
// variables, optionally seeded from .env files.
//
// It wraps `github.com/joho/godotenv` for .env loading and
// `github.com/caarlos0/env/v11` for parsing the environment into a struct
// described by field tags:
//
//	type Config struct {
//	    LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//	    Kind     string     `env:"KIND" envDefault:"customer"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("CUSTCHECK_"))
//
// Variables already present in the process environment take precedence over
// values from .env files. Without WithEnvFiles, Load reads ./.env when it
// exists and silently continues when it does not.
package config
