package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RequireLines validates that at least one shell line is provided and that
// none of them spans several lines.
func RequireLines(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <line>

Usage: %s

Example:
  %s "cat about.md"`, cmd.UseLine(), cmd.CommandPath())
	}
	for i, a := range args {
		if strings.ContainsAny(a, "\r\n") {
			return fmt.Errorf("argument %d contains a line break; pass each line as its own argument", i+1)
		}
	}
	return nil
}
