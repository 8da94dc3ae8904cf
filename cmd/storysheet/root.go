package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storysheet",
		Short: "Storysheet - export usability-test measurement sheets",
		Long: `Storysheet writes a spreadsheet of usability-test story steps with empty
columns for the time taken, errors and comments of each step.

Run without a subcommand to write StoryMeasurements.xlsx from the built-in
stories (or from .storysheet.yaml, when present).`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, &exportOptions{})
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newRecordCommand())
	cmd.AddCommand(newSummaryCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
