package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spboyer/storysheet/internal/stories"
	"github.com/spboyer/storysheet/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <stories-file>",
		Short: "Check a stories file",
		Long: `Check a YAML or Markdown stories file before exporting it.

YAML files are checked against the stories schema. Markdown files must contain
at least one level-2 heading followed by a list of steps.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	list, err := stories.Load(path)
	if err != nil {
		var schemaErr *validation.Error
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(out, "✗ %s\n", filepath.Base(path)) //nolint:errcheck
			for _, p := range schemaErr.Problems {
				fmt.Fprintf(out, "  %s\n", p) //nolint:errcheck
			}
			return &ValidationFailedError{Message: fmt.Sprintf("%s has %d schema error(s)", path, len(schemaErr.Problems))}
		}
		if errors.Is(err, stories.ErrNoStories) {
			fmt.Fprintf(out, "✗ %s\n", filepath.Base(path)) //nolint:errcheck
			return &ValidationFailedError{Message: err.Error()}
		}
		return err
	}

	steps := 0
	var empty []string
	for _, s := range list {
		steps += len(s.Steps)
		if len(s.Steps) == 0 {
			empty = append(empty, s.Name)
		}
	}

	fmt.Fprintf(out, "✓ %s: %d stories, %d steps\n", filepath.Base(path), len(list), steps) //nolint:errcheck
	if len(empty) > 0 {
		fmt.Fprintf(out, "  warning: no steps in %s\n", strings.Join(empty, ", ")) //nolint:errcheck
	}
	return nil
}
