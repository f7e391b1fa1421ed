package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/termfolio/internal/files/filesystem"
)

var treeCmd = &cobra.Command{
	Use:          "tree",
	Short:        "Print the loaded document tree",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShell(cmd, false)
		if err != nil {
			return err
		}
		defer s.close()
		return printTree(cmd.OutOrStdout(), s.tree)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func printTree(w io.Writer, tree *filesystem.Tree) error {
	err := tree.Walk(func(p filesystem.Path, n *filesystem.Node) error {
		if p.IsRoot() {
			_, err := fmt.Fprintln(w, p.String())
			return err
		}
		name := n.Name()
		if n.IsDir() {
			name += "/"
		}
		_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", len(p)), name)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%d documents\n", tree.FileCount())
	return err
}
