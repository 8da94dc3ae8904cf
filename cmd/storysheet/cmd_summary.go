package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/storysheet/internal/metrics"
	"github.com/spboyer/storysheet/internal/sheet"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type summaryOptions struct {
	format    string
	sheetName string
}

func newSummaryCommand() *cobra.Command {
	opts := &summaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary <sheet-file>",
		Short: "Summarize the recorded measurements per story",
		Long: `Read a filled-in measurement sheet and report, per story, how many steps
have been measured, the mean and spread of the time taken, and the errors and
comments recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "Worksheet to read (default first worksheet)")

	return cmd
}

func runSummary(cmd *cobra.Command, path string, opts *summaryOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", opts.format)
	}

	reader, err := sheet.ReaderFor(path, sheet.Options{SheetName: opts.sheetName})
	if err != nil {
		return err
	}
	records, err := reader.Read(path)
	if err != nil {
		return err
	}

	summaries := metrics.Summarize(records)

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}
	printSummaryTable(cmd.OutOrStdout(), summaries)
	return nil
}

var summaryHeaders = []string{"Story", "Steps", "Measured", "Mean (s)", "StdDev (s)", "95% CI (s)", "Errors", "Comments"}

func printSummaryTable(w io.Writer, summaries []metrics.StorySummary) {
	p := message.NewPrinter(language.English)

	table := [][]string{summaryHeaders}
	for _, s := range summaries {
		mean, sd, ci := "-", "-", "-"
		if s.Measured > 0 {
			mean = p.Sprintf("%.1f", s.MeanSeconds)
			sd = p.Sprintf("%.1f", s.StdDevSeconds)
			ci = p.Sprintf("%.1f–%.1f", s.CILowSeconds, s.CIHighSeconds)
		}
		table = append(table, []string{
			string(s.Story),
			p.Sprintf("%d", s.Steps),
			p.Sprintf("%d (%.0f%%)", s.Measured, s.Completion()*100),
			mean,
			sd,
			ci,
			p.Sprintf("%d", s.TotalErrors),
			p.Sprintf("%d", s.StepsWithComment),
		})
	}

	widths := make([]int, len(summaryHeaders))
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for i, row := range table {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = padRight(cell, widths[j])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")) //nolint:errcheck
		if i == 0 {
			rules := make([]string, len(widths))
			for j, wd := range widths {
				rules[j] = strings.Repeat("─", wd)
			}
			fmt.Fprintln(w, strings.Join(rules, "  ")) //nolint:errcheck
		}
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
