package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spboyer/storysheet/internal/export"
	"github.com/spboyer/storysheet/internal/models"
	"github.com/spboyer/storysheet/internal/projectconfig"
	"github.com/spboyer/storysheet/internal/sheet"
	"github.com/spboyer/storysheet/internal/stories"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	output      string
	format      string
	storiesFile string
	sheetName   string
}

func newExportCommand() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the measurement sheet",
		Long: `Write the measurement sheet: one row per story step, numbered across all
stories, with empty Time Taken (s), Errors and Comments columns.

Flags override .storysheet.yaml, which overrides the built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default StoryMeasurements.xlsx)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: xlsx or csv (default from the output extension)")
	cmd.Flags().StringVar(&opts.storiesFile, "stories", "", "YAML or Markdown file with the stories to export (default built-in stories)")
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "Worksheet name for xlsx output (default Sheet1)")

	return cmd
}

// exportPlan is the fully resolved set of inputs for one export.
type exportPlan struct {
	path        string
	format      sheet.Format
	sheetName   string
	storiesFile string
}

func resolveExportPlan(cfg *projectconfig.ProjectConfig, opts *exportOptions) (*exportPlan, error) {
	plan := &exportPlan{
		path:        cfg.ResolvePath(cfg.Output.Path),
		sheetName:   cfg.Output.Sheet,
		storiesFile: cfg.ResolvePath(cfg.Stories.File),
	}
	formatName := cfg.Output.Format
	if formatName == "" {
		formatName = projectconfig.DefaultOutputFormat
		if f, err := sheet.FormatForPath(cfg.Output.Path); err == nil {
			formatName = string(f)
		}
	}

	if opts.output != "" {
		plan.path = opts.output
		if f, err := sheet.FormatForPath(opts.output); err == nil {
			formatName = string(f)
		}
	}
	if opts.format != "" {
		formatName = opts.format
	}
	if opts.sheetName != "" {
		plan.sheetName = opts.sheetName
	}
	if opts.storiesFile != "" {
		plan.storiesFile = opts.storiesFile
	}

	format, err := sheet.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	plan.format = format
	return plan, nil
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return err
	}
	if cfg.Dir != "" {
		slog.Debug("Using project config", "dir", cfg.Dir)
	}

	plan, err := resolveExportPlan(cfg, opts)
	if err != nil {
		return err
	}

	list, err := loadStories(plan.storiesFile)
	if err != nil {
		return err
	}

	writer, err := sheet.WriterFor(plan.format, sheet.Options{SheetName: plan.sheetName})
	if err != nil {
		return err
	}

	res, err := export.New(writer, slog.Default()).Export(list, plan.path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s file '%s' created successfully!\n", sheet.Describe(plan.format), res.Path) //nolint:errcheck
	return nil
}

func loadStories(path string) ([]models.Story, error) {
	if path == "" {
		return stories.Builtin(), nil
	}
	slog.Debug("Loading stories", "path", path)
	return stories.Load(path)
}
