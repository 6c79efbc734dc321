package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config.parse_failed")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrLoadingEnvFiles is returned when an explicitly named .env file cannot be loaded
	ErrLoadingEnvFiles = errors.New("config.env_files_failed")

	// ErrReadingProfiles is returned when the profiles file exists but cannot be read
	ErrReadingProfiles = errors.New("config.profiles_read_failed")

	// ErrParsingProfiles is returned when the profiles file is not valid YAML
	ErrParsingProfiles = errors.New("config.profiles_parse_failed")
)
