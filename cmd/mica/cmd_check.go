package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/parser"
	"github.com/dhamidi/mica/project"
)

type checkOptions struct {
	ignoreLeadingZeroes  bool
	ignoreTrailingZeroes bool
	maxDepth             int
	noColor              bool
}

func (opts *checkOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opts.ignoreLeadingZeroes, "ignore-leading-zeroes", false, "suppress leading-zero warnings on numbers")
	cmd.Flags().BoolVar(&opts.ignoreTrailingZeroes, "ignore-trailing-zeroes", false, "suppress trailing-zero warnings on numbers")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum grammar nesting depth")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
}

// apply overlays the flags the user actually set on top of the project
// configuration.
func (opts *checkOptions) apply(cmd *cobra.Command, cfg *parser.Config) {
	if cmd.Flags().Changed("ignore-leading-zeroes") {
		cfg.IgnoreLeadingZeroes = opts.ignoreLeadingZeroes
	}
	if cmd.Flags().Changed("ignore-trailing-zeroes") {
		cfg.IgnoreTrailingZeroes = opts.ignoreTrailingZeroes
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = opts.maxDepth
	}
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse .mica files and report diagnostics",
		Long: `Parse .mica files and report diagnostics.

Without arguments, check looks for a mica.toml in the current directory or
one of its parents and checks every source file of that project.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			cfg := parser.Config{}

			proj, err := project.Load()
			if err == nil {
				cfg = proj.ParserConfig()
				if len(files) == 0 {
					files, err = proj.SourceFiles()
					if err != nil {
						return err
					}
				}
			}
			opts.apply(cmd, &cfg)

			if len(files) == 0 {
				return fmt.Errorf("no input files: pass them as arguments or add a %s", project.ConfigFileName)
			}

			results, err := checkFiles(files, cfg)
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if len(res.diags) > 0 {
					fmt.Println(diag.RenderAll(res.diags, !opts.noColor))
				}
				if res.file == nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files have errors", failed, len(results))
			}
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}

type checkResult struct {
	path  string
	file  *parser.File
	diags []diag.Diagnostic
}

// checkFiles parses the given files in parallel. Results come back in
// argument order regardless of completion order.
func checkFiles(paths []string, cfg parser.Config) ([]checkResult, error) {
	results := make([]checkResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			file, diags := parser.Parse(path, string(content), cfg)
			results[i] = checkResult{path: path, file: file, diags: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
