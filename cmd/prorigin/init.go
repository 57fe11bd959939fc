package main

import (
	"fmt"

	"github.com/lerenn/pr-origin/configs"
	"github.com/lerenn/pr-origin/pkg/config"
	"github.com/lerenn/pr-origin/pkg/fs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Initialize prorigin configuration",
		Long: `Write the default configuration file.

Configuration flags given on the command line (--url, --use-merge, ...) are written into it.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, fs.NewFS())
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}

func runInit(cmd *cobra.Command, fsInstance fs.FS) error {
	path := getConfigPath()

	exists, err := fsInstance.Exists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("configuration already exists at %s, use --force to overwrite it", path)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		return fmt.Errorf("%w: embedded default: %w", config.ErrConfigFileParse, err)
	}

	if !overrides.changed(cmd) {
		// Keep the documented default file as is
		if err := fsInstance.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
			return fmt.Errorf("%w: %w", config.ErrConfigFileWrite, err)
		}
	} else {
		overrides.apply(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
		if err := config.NewManager().SaveConfig(path, &cfg); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	}
	return nil
}
