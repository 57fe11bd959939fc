package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/pr-origin/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	SaveConfig(configPath string, config *Config) error
	DefaultConfig() *Config
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{
		fs: fs.NewFS(),
	}
}

// DefaultConfigPath returns the configuration path used when none is given.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, ".prorigin", "config.yaml")
}

// LoadConfig loads and validates configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	config, err := c.readConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// SaveConfig writes the configuration to the specified file path, creating parent directories.
func (c *realManager) SaveConfig(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	if err := c.fs.WriteFileAtomic(configPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	return nil
}

// DefaultConfig returns the default configuration. It has no repository URL and
// must be completed before use.
func (c *realManager) DefaultConfig() *Config {
	config := &Config{}
	config.ApplyDefaults()
	return config
}

// LoadConfigWithFallback loads configuration from file with fallback to default when the
// file does not exist. The returned configuration is not validated.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := &realManager{fs: fs.NewFS()}
	config, err := manager.readConfig(configPath)
	if errors.Is(err, ErrConfigFileNotFound) {
		return manager.DefaultConfig(), nil
	}
	return config, err
}

// readConfig parses a configuration file and applies defaults, without validating it.
func (c *realManager) readConfig(configPath string) (*Config, error) {
	// Check if config file exists
	exists, err := c.fs.Exists(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
	}

	data, err := c.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.expandTildes(); err != nil {
		return nil, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}
	config.ApplyDefaults()

	return &config, nil
}
