package main

import (
	"fmt"

	"github.com/spboyer/storysheet/internal/sheet"
	"github.com/spboyer/storysheet/internal/wizard"
	"github.com/spf13/cobra"
)

type recordOptions struct {
	taskID    int
	sheetName string
	time      string
	errors    string
	comments  string
}

func newRecordCommand() *cobra.Command {
	opts := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "record <sheet-file>",
		Short: "Record the measurements of one step",
		Long: `Record the time taken, error count and comments for one step of an exported
measurement sheet.

Without --time, --errors or --comments an interactive form asks for the values.
Use "-" to clear a value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.taskID, "task", "t", 0, "Task ID to record (required)")
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "Worksheet to update (default first worksheet)")
	cmd.Flags().StringVar(&opts.time, "time", "", "Time taken in seconds")
	cmd.Flags().StringVar(&opts.errors, "errors", "", "Number of errors")
	cmd.Flags().StringVar(&opts.comments, "comments", "", "Comments")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

func runRecord(cmd *cobra.Command, path string, opts *recordOptions) error {
	sheetOpts := sheet.Options{SheetName: opts.sheetName}

	reader, err := sheet.ReaderFor(path, sheetOpts)
	if err != nil {
		return err
	}
	records, err := reader.Read(path)
	if err != nil {
		return err
	}
	step, err := sheet.Find(records, opts.taskID)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	interactive := !flags.Changed("time") && !flags.Changed("errors") && !flags.Changed("comments")

	var updated = step
	if interactive {
		updated, err = wizard.RunMeasurementForm(cmd.InOrStdin(), cmd.OutOrStdout(), step)
	} else {
		// flags that were not given keep their current value
		input := wizard.InputFromRecord(step)
		if flags.Changed("time") {
			input.Duration = opts.time
		}
		if flags.Changed("errors") {
			input.Errors = opts.errors
		}
		if flags.Changed("comments") {
			input.Comments = opts.comments
		}
		updated, err = wizard.ParseMeasurement(step, input)
	}
	if err != nil {
		return err
	}

	if err := sheet.UpdateMeasurement(path, sheetOpts, updated); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded task %d in '%s'\n", updated.ID, path) //nolint:errcheck
	return nil
}
