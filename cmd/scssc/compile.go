package main

import (
	"fmt"
	"os"

	"github.com/scssc/scssc/internal/logger"
	"github.com/scssc/scssc/pkg/scss"
	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	var (
		outPath string
		minify  bool
		rootDir string
	)

	cmd := &cobra.Command{
		Use:   "compile <entry.scss>",
		Short: "compile a stylesheet to CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompileOnce(args[0], outPath, rootDir, minify)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write CSS to this file instead of stdout")
	cmd.Flags().BoolVar(&minify, "minify", false, "collapse output onto as few lines as practical")
	cmd.Flags().StringVar(&rootDir, "root", "", "base directory for resolving @import in the entry file")

	return cmd
}

func runCompileOnce(path, outPath, rootDir string, minify bool) error {
	result := scss.CompileFile(path, scss.Options{MinifyWhitespace: minify, RootDir: rootDir})
	printMessages(result.Messages)

	if result.HasErrors() {
		return fmt.Errorf("compilation failed")
	}

	if outPath == "" {
		fmt.Fprint(os.Stdout, result.CSS)
		return nil
	}
	return os.WriteFile(outPath, []byte(result.CSS), 0o644)
}

func printMessages(msgs []logger.Msg) {
	info := logger.GetTerminalInfo(os.Stderr)
	for _, m := range msgs {
		fmt.Fprint(os.Stderr, m.StringWithColor(info))
	}
}
