// Package cli wires the workflow commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workflow",
		Short:         "Workflow is a command line tool for day-to-day git history maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
