// Package cli provides the command-line interface for pathglob.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pathglob",
		Short: "Expand path and glob patterns the way a shell does",
		Long: `pathglob resolves a path or glob pattern against the working directory
and lists the matching files, locally or over sftp.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewLsCommand(),
		NewPickCommand(),
		NewRemoteCommand(),
		NewVersionCommand(),
	)
	return rootCmd
}
