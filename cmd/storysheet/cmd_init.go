package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spboyer/storysheet/internal/projectconfig"
	"github.com/spboyer/storysheet/internal/stories"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const storiesFileName = "stories.yaml"

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a project config and an editable stories file",
		Long: `Create .storysheet.yaml and stories.yaml in the target directory (default: the
current directory). stories.yaml starts as a copy of the built-in stories.

Existing files are left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: initCommandE,
	}
}

func initCommandE(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := projectconfig.New()
	cfg.Stories.File = storiesFileName
	cfgData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}

	storiesData, err := yaml.Marshal(&stories.File{Stories: stories.Builtin()})
	if err != nil {
		return fmt.Errorf("failed to marshal stories: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Project initialized:") //nolint:errcheck
	for _, f := range []struct {
		name string
		data []byte
		desc string
	}{
		{projectconfig.FileName, cfgData, "Output settings"},
		{storiesFileName, storiesData, "Story steps"},
	} {
		p := filepath.Join(dir, f.name)
		status := "created"
		if _, err := os.Stat(p); err == nil {
			status = "exists"
		} else if err := os.WriteFile(p, f.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		fmt.Fprintf(out, "  %-20s %-8s %s\n", f.name, status, f.desc) //nolint:errcheck
	}
	return nil
}
