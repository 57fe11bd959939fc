package main

import (
	"fmt"

	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/logger"
	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/spf13/cobra"
)

// configOverrides are the configuration values that can be given on the command line.
type configOverrides struct {
	url            string
	useMerge       bool
	requiredLabels []string
	requiredState  string
	fetchURL       string
	apiURL         string
	mirrorDir      string
}

func (o *configOverrides) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.url, "url", "", "Repository URL, e.g. https://github.com/owner/repo")
	flags.BoolVar(&o.useMerge, "use-merge", false, "Check out the merge ref instead of the head ref")
	flags.StringSliceVar(&o.requiredLabels, "required-label", nil, "Label required on the pull request (repeatable)")
	flags.StringVar(&o.requiredState, "required-state", "", "Required pull request state (open or closed)")
	flags.StringVar(&o.fetchURL, "fetch-url", "", "Git remote fetched instead of the repository URL")
	flags.StringVar(&o.apiURL, "api-url", "", "GitHub API endpoint")
	flags.StringVar(&o.mirrorDir, "mirror-dir", "", "Directory of the persistent mirrors")
}

var overrideFlags = []string{
	"url", "use-merge", "required-label", "required-state", "fetch-url", "api-url", "mirror-dir",
}

// changed reports whether any configuration flag was set on the command line.
func (o *configOverrides) changed(cmd *cobra.Command) bool {
	for _, name := range overrideFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply overrides the configuration with the flags set on the command line.
func (o *configOverrides) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = o.url
	}
	if flags.Changed("use-merge") {
		cfg.UseMerge = o.useMerge
	}
	if flags.Changed("required-label") {
		cfg.RequiredLabels = o.requiredLabels
	}
	if flags.Changed("required-state") {
		cfg.RequiredState = o.requiredState
	}
	if flags.Changed("fetch-url") {
		cfg.FetchURL = o.fetchURL
	}
	if flags.Changed("api-url") {
		cfg.APIURL = o.apiURL
	}
	if flags.Changed("mirror-dir") {
		cfg.MirrorDir = o.mirrorDir
	}
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file, falling back to defaults, and applies the flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfigWithFallback(getConfigPath())
	if err != nil {
		return nil, err
	}

	overrides.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w (run: prorigin init --url <repository>)", config.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func newLogger() logger.Logger {
	switch {
	case quiet:
		return logger.NewNoopLogger()
	case verbose:
		return logger.NewZapLogger(logger.LevelInfo)
	default:
		return logger.NewZapLogger(logger.LevelWarn)
	}
}

// newOrigin builds the origin used by the commands.
var newOrigin = func(cfg *config.Config, lg logger.Logger) (origin.Origin, error) {
	return origin.New(origin.NewOriginParams{
		Config: cfg,
		Logger: lg,
	})
}

// withOrigin loads the configuration and runs fn with an origin that is closed afterwards.
func withOrigin(cmd *cobra.Command, fn func(o origin.Origin) error) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	o, err := newOrigin(cfg, newLogger())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := o.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(o)
}
