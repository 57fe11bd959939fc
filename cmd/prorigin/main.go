// Package main provides the command-line interface of prorigin.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
	overrides  configOverrides
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prorigin",
		Short: "Resolve GitHub pull requests into revisions",
		Long: `prorigin resolves references to GitHub pull requests into immutable revisions, ` +
			`lists the commits they introduce and checks out their head or merge tree.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")
	overrides.register(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createResolveCmd(),
		createChangesCmd(),
		createCheckoutCmd(),
	)

	return rootCmd
}
