// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for dotenv files,
// `github.com/caarlos0/env/v11` for parsing and
// `github.com/go-playground/validator/v10` for `validate` struct tags:
//
//   - LoadEnv reads one or more `.env` files without overriding variables
//     already set in the process environment.
//   - Load parses the environment into a struct, validates it and caches the
//     result per type, so later calls are served from memory.
//   - MustLoadEnv and MustLoad panic on failure for startup code.
//   - ResetCache and ForceReload exist for tests that change the environment.
//
// # Usage
//
//	type FormConfig struct {
//	    Strict bool `env:"STRICT" envDefault:"false"`
//	    MinAge int  `env:"MIN_AGE" envDefault:"18" validate:"gte=0"`
//	}
//
//	var cfg FormConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: parsed values break a `validate` tag.
//   - ErrLoadingEnvFile: a dotenv file is missing or malformed.
//   - ErrNilPointer: nil pointer passed to Load.
//
// Sentinels are joined with the underlying library error; match them with
// errors.Is.
package config
