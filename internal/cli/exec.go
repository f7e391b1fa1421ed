package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

var execCmd = &cobra.Command{
	Use:   "exec <line>...",
	Short: "Run shell lines non-interactively",
	Long: `Run each argument as one shell line, in order, and print the transcript.

Exits with code 13 when any line failed.`,
	Example: `  termfolio exec "cat about.md"
  termfolio exec "cd projects" "ls" --content ./site`,
	Args:         RequireLines,
	SilenceUsage: true,
	RunE:         runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	s, err := newShell(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	return s.runScripted(commandContext(cmd), strings.NewReader(strings.Join(args, "\n")), cmd.OutOrStdout(), false)
}

func isCommandFailure(err error) bool {
	return errors.Is(err, termfolio.ErrCommandFailed)
}
