package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/scssc/scssc/internal/helpers"
)

// debounceWindow absorbs the burst of events an editor's save produces
// (a write plus a rename, often within the same millisecond) so one save
// triggers one recompile instead of two or three.
const debounceWindow = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var (
		outPath string
		minify  bool
		rootDir string
	)

	cmd := &cobra.Command{
		Use:   "watch <entry.scss>",
		Short: "recompile whenever the entry file or its directory tree changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], outPath, rootDir, minify)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write CSS to this file instead of stdout on every rebuild")
	cmd.Flags().BoolVar(&minify, "minify", false, "collapse output onto as few lines as practical")
	cmd.Flags().StringVar(&rootDir, "root", "", "base directory for resolving @import in the entry file")

	return cmd
}

func runWatch(path, outPath, rootDir string, minify bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	watchDir := filepath.Dir(path)
	if err := addRecursive(watcher, watchDir); err != nil {
		return fmt.Errorf("watching %s: %w", watchDir, err)
	}

	rebuild := func() {
		if err := runCompileOnce(path, outPath, rootDir, minify); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	rebuild()

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".scss" {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}
		case <-timerC:
			rebuild()
			timer = nil
			timerC = nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" || helpers.IsInsideNodeModules(path+string(filepath.Separator)+"x") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
