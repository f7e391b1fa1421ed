package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A portfolio you browse like a shell",
	Long: asciiLogo + `

termfolio serves a read-only tree of Markdown documents through a small
Unix-like shell: ls, cd, cat, history, tab completion and a few easter eggs.

Run without arguments for the interactive terminal UI. When stdin or stdout
is not a terminal, lines are read from stdin and the transcript is printed as
plain text.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  13 - A scripted command failed
  14 - Content could not be loaded`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose output for all commands")
	flags.String("config", "", "Path to termfolio.yaml (default ./termfolio.yaml)")
	flags.String("content", "", "Directory of documents to serve instead of the bundled ones")
	flags.String("host", "", "Host name shown in the prompt")
	flags.String("log-file", "", "Write JSON logs to this file")
	flags.Bool("no-banner", false, "Skip the welcome banner")

	_ = rootCmd.RegisterFlagCompletionFunc("content", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("config", completeYAMLFiles)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
