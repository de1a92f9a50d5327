// Command scssc compiles one stylesheet to CSS on stdout, diagnostics on
// stderr, non-zero exit on error. It also exposes a "watch" mode that
// recompiles whenever a .scss file under the entry file's directory
// changes on disk.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scssc <entry.scss>",
		Short: "scssc compiles SCSS stylesheets to plain CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompileOnce(args[0], "", "", false)
		},
	}
	root.AddCommand(newCompileCmd())
	root.AddCommand(newWatchCmd())
	return root
}
