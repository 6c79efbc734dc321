// Package config loads client configuration from environment variables and
// an optional YAML profiles file.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env: the default .env file is read once per process,
// then the environment is parsed into any struct with `env` field tags.
//
//	type ClientConfig struct {
//	    BaseURL string        `env:"CHIPIN_BASE_URL" envDefault:"http://localhost:8000"`
//	    Timeout time.Duration `env:"CHIPIN_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// The profiles file lets one machine hold several named API targets
// (production, staging, local) with per-target token locations:
//
//	default: prod
//	profiles:
//	  prod:
//	    base_url: https://api.chipin.example
//	  local:
//	    base_url: http://localhost:8000
//	    token_file: /tmp/chipin-dev-token
//
// Sentinel errors can be tested with errors.Is: ErrParsingConfig,
// ErrNilPointer, ErrLoadingEnvFiles, ErrReadingProfiles,
// ErrParsingProfiles.
package config
