package main

import (
	"fmt"

	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/spf13/cobra"
)

func createCheckoutCmd() *cobra.Command {
	checkoutCmd := &cobra.Command{
		Use:   "checkout <reference> <directory> [--use-merge]",
		Short: "Check out a pull request into a directory",
		Long: `Resolve a pull request reference and replace the content of directory with its tree.

With --use-merge (or use_merge in the configuration), the merge of the pull
request into its base is checked out instead of its head.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrigin(cmd, func(o origin.Origin) error {
				rev, err := o.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := o.Checkout(rev, args[1]); err != nil {
					return err
				}

				if !quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "Checked out %s into %s\n", rev.SHA1(), args[1])
				}
				return nil
			})
		},
	}

	return checkoutCmd
}
