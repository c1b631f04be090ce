// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the optional `.env` file in the working directory is loaded once, extra
// files can be requested per call, and the environment is parsed into any
// struct annotated with `env` tags. Each (type, prefix) pair is parsed once
// and cached for the lifetime of the process; Reset clears the cache.
//
//	type Config struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("RECORDKIT_")); err != nil {
//	    return err
//	}
//
// Failures can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
