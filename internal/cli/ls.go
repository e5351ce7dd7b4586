package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellkit/pathglob/pkg/pathglob/glob"
	"github.com/shellkit/pathglob/pkg/pathglob/resolve"
	"github.com/shellkit/pathglob/pkg/pathglob/span"
)

type matchFlags struct {
	caseInsensitive bool
	noHidden        bool
	skipHiddenDirs  bool
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.caseInsensitive, "case-insensitive", "i", false, "match without regard to letter case")
	cmd.Flags().BoolVar(&f.noHidden, "no-hidden", false, "hide dotfiles from wildcard segments")
	cmd.Flags().BoolVar(&f.skipHiddenDirs, "skip-hidden-dirs", false, "keep ** out of hidden directories")
}

func (f *matchFlags) options() glob.Options {
	opts := glob.DefaultOptions()
	opts.CaseSensitive = !f.caseInsensitive
	opts.RequireLiteralLeadingDot = f.noHidden
	opts.RecurseHiddenDirs = !f.skipHiddenDirs
	return opts
}

type lsFlags struct {
	matchFlags
	absolute bool
	cwd      string
	remote   string
}

// NewLsCommand creates the ls command.
func NewLsCommand() *cobra.Command {
	flags := &lsFlags{}
	cmd := &cobra.Command{
		Use:   "ls PATTERN",
		Short: "List the paths matching a pattern",
		Long: `Resolve a path or glob pattern against the working directory and print
the matches. By default the prefix shared by all matches is trimmed so paths
stay short; use --absolute for full paths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(cmd, args[0], flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&flags.absolute, "absolute", "a", false, "print absolute paths instead of prefix-relative ones")
	cmd.Flags().StringVar(&flags.cwd, "cwd", "", "resolve relative to this directory instead of the working directory")
	cmd.Flags().StringVar(&flags.remote, "remote", "", "expand over sftp, e.g. sftp://user@host")
	return cmd
}

func runLs(cmd *cobra.Command, pattern string, flags *lsFlags) error {
	if flags.remote != "" {
		return runRemoteLs(cmd, pattern, flags)
	}

	cwd := flags.cwd
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return err
		}
	}

	opts := flags.options()
	patternSpan := span.New(0, len(pattern))
	prefix, matches, err := resolve.Resolve(span.NewSpanned(pattern, patternSpan), cwd, patternSpan, &opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for match, err := range matches {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
			continue
		}
		if !flags.absolute {
			match = Relative(prefix, match)
		}
		fmt.Fprintln(out, match)
	}
	return nil
}
