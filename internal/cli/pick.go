package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shellkit/pathglob/pkg/pathglob/resolve"
	"github.com/shellkit/pathglob/pkg/pathglob/span"
)

// NewPickCommand creates the pick command.
func NewPickCommand() *cobra.Command {
	flags := &matchFlags{}
	cmd := &cobra.Command{
		Use:   "pick PATTERN",
		Short: "Interactively select one of the paths matching a pattern",
		Long: `Resolve a pattern and choose one match from an interactive list. The
selected path is printed in absolute form, so the output can feed another
command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args[0], flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runPick(cmd *cobra.Command, pattern string, flags *matchFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	opts := flags.options()
	patternSpan := span.New(0, len(pattern))
	prefix, matches, err := resolve.Resolve(span.NewSpanned(pattern, patternSpan), cwd, patternSpan, &opts)
	if err != nil {
		return err
	}

	var paths, labels []string
	for match, err := range matches {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
			continue
		}
		paths = append(paths, match)
		labels = append(labels, Relative(prefix, match))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no matches for %q", pattern)
	}

	selected, err := PickOne(labels, PickerOptions{Title: "Matches for " + pattern + ":"})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), paths[selected])
	return nil
}
