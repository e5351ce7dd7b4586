package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	constants "github.com/shellkit/pathglob/pkg"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pathglob %s\n", constants.Version)
		},
	}
}
