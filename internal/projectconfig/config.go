// Package projectconfig provides the ProjectConfig struct and loader for
// .storysheet.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up from the working directory.
const FileName = ".storysheet.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultOutputPath   = "StoryMeasurements.xlsx"
	DefaultOutputFormat = "xlsx"
	DefaultSheetName    = "Sheet1"

	// maxSearchDepth bounds the walk up from the start directory.
	maxSearchDepth = 10
)

// OutputConfig controls where and how the measurement sheet is written.
type OutputConfig struct {
	Path string `yaml:"path,omitempty"`
	// Format is empty when it should be taken from the extension of Path.
	Format string `yaml:"format,omitempty"`
	Sheet  string `yaml:"sheet,omitempty"`
}

// StoriesConfig selects the story lists. An empty File means the built-in stories.
type StoriesConfig struct {
	File string `yaml:"file,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .storysheet.yaml.
type ProjectConfig struct {
	Output  OutputConfig  `yaml:"output,omitempty"`
	Stories StoriesConfig `yaml:"stories,omitempty"`

	// Dir is the directory the config file was found in; empty when defaults
	// are used. Relative paths in the file are resolved against it.
	Dir string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: DefaultOutputFormat,
			Sheet:  DefaultSheetName,
		},
	}
}

// Load finds .storysheet.yaml by walking up from startDir, unmarshals it, and
// fills in missing fields with defaults. If no config file is found, returns
// defaults with a nil error. Real I/O errors are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, dir, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Dir = dir
	return cfg, nil
}

// ResolvePath makes a path from the config file relative to the file's
// directory. Absolute paths and empty strings are returned unchanged.
func (c *ProjectConfig) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// findConfigFile walks up from dir looking for .storysheet.yaml. Returns
// os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxSearchDepth; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst. A path given
// without a format leaves Format empty so it follows the path's extension.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Output.Path != "" {
		dst.Output.Path = src.Output.Path
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Sheet != "" {
		dst.Output.Sheet = src.Output.Sheet
	}

	if src.Stories.File != "" {
		dst.Stories.File = src.Stories.File
	}
}
