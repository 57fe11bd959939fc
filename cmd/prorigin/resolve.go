package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/lerenn/pr-origin/pkg/origin"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var outputFormat string

// revisionOutput is the yaml view of a revision.
type revisionOutput struct {
	SHA1             string            `yaml:"sha1"`
	ContextReference string            `yaml:"context_reference"`
	Labels           map[string]string `yaml:"labels,omitempty"`
}

func createResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve <reference> [--output text|yaml]",
		Short: "Resolve a pull request reference into a revision",
		Long: `Resolve a pull request reference into a revision.

A reference is a pull request URL, a pull request number, a head ref
(refs/pull/<number>/head) or a commit id already fetched in the mirror.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrigin(cmd, func(o origin.Origin) error {
				rev, err := o.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printRevision(cmd.OutOrStdout(), rev)
			})
		},
	}

	// Add flags
	resolveCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or yaml)")

	return resolveCmd
}

func printRevision(w io.Writer, rev *origin.Revision) error {
	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(revisionOutput{
			SHA1:             rev.SHA1(),
			ContextReference: rev.ContextReference(),
			Labels:           rev.Labels(),
		})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text", "":
		style := newStyles(w)
		fmt.Fprintf(w, "%s %s\n", style.sha1.Render(rev.SHA1()), rev.ContextReference())
		labels := rev.Labels()
		keys := make([]string, 0, len(labels))
		for key := range labels {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(w, "  %s %s\n", style.label.Render(key+":"), labels[key])
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
