// Package config provides configuration management for the pull request origin.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lerenn/pr-origin/pkg/forge"
)

const (
	// DefaultIntegrateLabel is the label key carrying the integrate information of a revision.
	DefaultIntegrateLabel = "INTEGRATE_REVIEW"
	// DefaultTokenEnv is the environment variable read for the GitHub API token.
	DefaultTokenEnv = "GITHUB_TOKEN"
	// StateOpen restricts resolution to open pull requests.
	StateOpen = "open"
	// StateClosed restricts resolution to closed pull requests.
	StateClosed = "closed"
)

// Config represents the origin configuration.
type Config struct {
	// URL of the GitHub repository, e.g. https://github.com/owner/repo.
	URL string `yaml:"url"`
	// RequiredLabels must all be present on the pull request.
	RequiredLabels []string `yaml:"required_labels,omitempty"`
	// UseMerge selects the merge ref instead of the head ref at checkout.
	UseMerge bool `yaml:"use_merge"`
	// RequiredState, when set, is the state the pull request must be in.
	RequiredState string `yaml:"required_state,omitempty"`
	// IntegrateLabel is the label key of the integrate information.
	IntegrateLabel string `yaml:"integrate_label,omitempty"`
	// MirrorDir holds the persistent mirrors; a temporary mirror is used when empty.
	MirrorDir string `yaml:"mirror_dir,omitempty"`
	// FetchURL overrides the git remote fetched into the mirror.
	FetchURL string `yaml:"fetch_url,omitempty"`
	// APIURL overrides the GitHub API endpoint.
	APIURL string `yaml:"api_url,omitempty"`
	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `yaml:"token_env,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrURLEmpty
	}
	if _, err := forge.ParseRepositoryURL(c.URL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	for _, label := range c.RequiredLabels {
		if strings.TrimSpace(label) == "" {
			return ErrEmptyLabel
		}
	}

	switch c.RequiredState {
	case "", StateOpen, StateClosed:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidState, c.RequiredState)
	}

	if c.IntegrateLabel == "" {
		return ErrIntegrateLabelKey
	}

	return nil
}

// RemoteURL returns the git remote fetched into the mirror.
func (c *Config) RemoteURL() string {
	if c.FetchURL != "" {
		return c.FetchURL
	}
	return c.URL
}

// Token returns the GitHub API token from the configured environment variable.
func (c *Config) Token() string {
	if c.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.TokenEnv)
}

// ApplyDefaults fills the optional fields left empty.
func (c *Config) ApplyDefaults() {
	if c.IntegrateLabel == "" {
		c.IntegrateLabel = DefaultIntegrateLabel
	}
	if c.TokenEnv == "" {
		c.TokenEnv = DefaultTokenEnv
	}
}

// expandTildes expands a leading ~ in the configured paths.
func (c *Config) expandTildes() error {
	expanded, err := expandTilde(c.MirrorDir)
	if err != nil {
		return err
	}
	c.MirrorDir = expanded
	return nil
}

func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
