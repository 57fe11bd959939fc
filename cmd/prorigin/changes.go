package main

import (
	"fmt"
	"io"

	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// changeOutput is the yaml view of a change.
type changeOutput struct {
	SHA1    string `yaml:"sha1"`
	Author  string `yaml:"author"`
	Date    string `yaml:"date"`
	Message string `yaml:"message"`
}

func createChangesCmd() *cobra.Command {
	changesCmd := &cobra.Command{
		Use:   "changes <baseline> <head> [--output text|yaml]",
		Short: "List the commits introduced by a pull request, oldest first",
		Long: `List the commits reachable from head but not from baseline, oldest first.

The head is resolved first so that a baseline commit id can be found in the
history it fetched. A baseline that diverged from head is replaced by their
common ancestor.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrigin(cmd, func(o origin.Origin) error {
				head, err := o.Resolve(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				baseline, err := o.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				changes, err := o.Changes(baseline, head)
				if err != nil {
					return err
				}
				return printChanges(cmd.OutOrStdout(), changes)
			})
		},
	}

	// Add flags
	changesCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or yaml)")

	return changesCmd
}

func printChanges(w io.Writer, changes []origin.Change) error {
	switch outputFormat {
	case "yaml":
		output := make([]changeOutput, 0, len(changes))
		for _, change := range changes {
			output = append(output, changeOutput{
				SHA1:    change.SHA1,
				Author:  change.Author(),
				Date:    change.Date.UTC().Format("2006-01-02T15:04:05Z"),
				Message: change.Message,
			})
		}
		data, err := yaml.Marshal(output)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text", "":
		style := newStyles(w)
		for _, change := range changes {
			fmt.Fprintf(w, "%s %s\n", style.sha1.Render(shortSHA1(change.SHA1)), change.Summary())
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func shortSHA1(sha1 string) string {
	if len(sha1) > 12 {
		return sha1[:12]
	}
	return sha1
}
