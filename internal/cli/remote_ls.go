package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shellkit/pathglob/pkg/pathglob/credentials"
	"github.com/shellkit/pathglob/pkg/pathglob/glob"
	"github.com/shellkit/pathglob/pkg/pathglob/sftpfs"
)

// parseRemote turns "sftp://user@host[:port]" into connection details,
// looking the password up in the keyring.
func parseRemote(remote string) (sftpfs.ConnectionDetails, error) {
	var details sftpfs.ConnectionDetails

	u, err := url.Parse(remote)
	if err != nil {
		return details, fmt.Errorf("invalid remote %q: %v", remote, err)
	}
	if u.Scheme != "sftp" {
		return details, fmt.Errorf("unsupported remote scheme %q, expected sftp://", u.Scheme)
	}
	if u.User == nil || u.User.Username() == "" {
		return details, fmt.Errorf("remote %q is missing a username", remote)
	}

	details.Hostname = u.Hostname()
	details.Username = u.User.Username()
	if port := u.Port(); port != "" {
		if details.Port, err = strconv.Atoi(port); err != nil {
			return details, fmt.Errorf("invalid remote port %q", port)
		}
	}

	if password, ok := u.User.Password(); ok {
		details.Password = password
		return details, nil
	}

	store := credentials.NewStore("")
	if !store.HasPassword(details.Hostname, details.Username) {
		return details, fmt.Errorf("no stored password for %s@%s; run `pathglob remote set-password %s %s`",
			details.Username, details.Hostname, details.Hostname, details.Username)
	}
	details.Password = store.Password(details.Hostname, details.Username)
	return details, nil
}

func runRemoteLs(cmd *cobra.Command, pattern string, flags *lsFlags) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("remote patterns must be absolute, got %q", pattern)
	}

	details, err := parseRemote(flags.remote)
	if err != nil {
		return err
	}
	tree, err := sftpfs.Connect(cmd.Context(), details)
	if err != nil {
		return err
	}

	compiled, err := glob.Glob(pattern, flags.options())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for match, err := range compiled.Iter(tree) {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, match)
	}
	return nil
}
