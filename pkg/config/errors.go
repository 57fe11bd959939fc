package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileParse    = errors.New("failed to parse config file")
	ErrConfigFileWrite    = errors.New("failed to write config file")
	// Configuration validation errors.
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrURLEmpty          = errors.New("url cannot be empty")
	ErrInvalidURL        = errors.New("url is not a GitHub repository URL")
	ErrEmptyLabel        = errors.New("required_labels cannot contain empty labels")
	ErrInvalidState      = errors.New("required_state must be empty, 'open' or 'closed'")
	ErrIntegrateLabelKey = errors.New("integrate_label cannot be empty")
)
