package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/project"
)

func newWatchCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recheck project source files whenever they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.Load()
			if err != nil {
				return err
			}
			cfg := proj.ParserConfig()
			opts.apply(cmd, &cfg)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			if err := watchTree(watcher, proj.SrcDir()); err != nil {
				return err
			}

			// Check everything once before waiting for changes.
			files, err := proj.SourceFiles()
			if err != nil {
				return err
			}
			results, err := checkFiles(files, cfg)
			if err != nil {
				return err
			}
			for _, res := range results {
				reportResult(res, !opts.noColor)
			}

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						// New directories need their own watch.
						watchTree(watcher, event.Name)
						continue
					}
					if !strings.HasSuffix(event.Name, ".mica") {
						continue
					}
					results, err := checkFiles([]string{event.Name}, cfg)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						continue
					}
					reportResult(results[0], !opts.noColor)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintln(os.Stderr, "watch:", err)
				}
			}
		},
	}

	opts.register(cmd)

	return cmd
}

func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func reportResult(res checkResult, colored bool) {
	if len(res.diags) == 0 {
		fmt.Printf("%s: ok\n", res.path)
		return
	}
	fmt.Println(diag.RenderAll(res.diags, colored))
}
