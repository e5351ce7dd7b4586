package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellkit/pathglob/pkg/pathglob/credentials"
)

// NewRemoteCommand creates the remote command group.
func NewRemoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage sftp credentials",
	}
	cmd.AddCommand(newSetPasswordCommand(), newDeletePasswordCommand())
	return cmd
}

func newSetPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-password HOST USER",
		Short: "Store an sftp password in the system keyring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, user := args[0], args[1]
			password, err := promptPassword(fmt.Sprintf("Password for %s@%s:", user, host))
			if err != nil {
				return err
			}
			if err := credentials.NewStore("").SetPassword(host, user, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored password for %s@%s\n", user, host)
			return nil
		},
	}
}

func newDeletePasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-password HOST USER",
		Short: "Remove a stored sftp password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return credentials.NewStore("").DeletePassword(args[0], args[1])
		},
	}
}
