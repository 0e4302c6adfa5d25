// Package project locates and loads mica.toml, the per-project
// configuration file. A project is any directory tree whose root contains a
// mica.toml; commands operating on whole projects use it to find source
// files and to configure the parser.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/mica/parser"
)

// ConfigFileName is the file that marks a project root.
const ConfigFileName = "mica.toml"

// ErrNoProject reports that no mica.toml was found in the start directory or
// any of its parents.
var ErrNoProject = errors.New("project: no " + ConfigFileName + " found")

// Project is a loaded project: its root directory and the parsed
// configuration.
type Project struct {
	RootDir    string
	ConfigPath string
	Config     Config
}

// Config is the mica.toml file.
type Config struct {
	Name   string         `toml:"name"`
	SrcDir string         `toml:"src_dir"`
	Parser ParserSettings `toml:"parser"`
}

// ParserSettings is the [parser] table of mica.toml.
type ParserSettings struct {
	MaxDepth int      `toml:"max_depth"`
	Warnings Warnings `toml:"warnings"`
}

// Warnings is the [parser.warnings] table. Every warning is on unless the
// file switches it off; a nil field means the file did not mention it.
type Warnings struct {
	NumberLeadingZeroes  *bool `toml:"number_leading_zeroes"`
	NumberTrailingZeroes *bool `toml:"number_trailing_zeroes"`
}

// Load finds and loads the project containing the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom finds and loads the project containing dir, walking up the
// directory tree until a mica.toml appears. It reports ErrNoProject when the
// walk reaches the filesystem root without finding one.
func LoadFrom(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		configPath := filepath.Join(root, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfig(root, configPath)
		}

		parent := filepath.Dir(root)
		if parent == root {
			return nil, ErrNoProject
		}
		root = parent
	}
}

func loadConfig(root, configPath string) (*Project, error) {
	proj := &Project{RootDir: root, ConfigPath: configPath}
	meta, err := toml.DecodeFile(configPath, &proj.Config)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load %s: unknown key %q", configPath, undecoded[0].String())
	}
	return proj, nil
}

// ParserConfig translates the [parser] settings into a parser.Config.
func (p *Project) ParserConfig() parser.Config {
	cfg := parser.Config{MaxDepth: p.Config.Parser.MaxDepth}
	warnings := p.Config.Parser.Warnings
	if warnings.NumberLeadingZeroes != nil && !*warnings.NumberLeadingZeroes {
		cfg.IgnoreLeadingZeroes = true
	}
	if warnings.NumberTrailingZeroes != nil && !*warnings.NumberTrailingZeroes {
		cfg.IgnoreTrailingZeroes = true
	}
	return cfg
}

// SrcDir is the directory source files live in, relative paths resolved
// against the project root. It defaults to the root itself.
func (p *Project) SrcDir() string {
	dir := p.Config.SrcDir
	if dir == "" {
		return p.RootDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.RootDir, dir)
}

// SourceFiles lists all .mica files under the source directory, sorted by
// the walk order of filepath.WalkDir.
func (p *Project) SourceFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(p.SrcDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".mica") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan source files in %s: %w", p.SrcDir(), err)
	}
	return files, nil
}
