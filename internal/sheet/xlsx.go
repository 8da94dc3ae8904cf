package sheet

import (
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/storysheet/internal/dataset"
	"github.com/spboyer/storysheet/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 8
	maxColumnWidth = 80
)

// XLSXWriter writes records to a single worksheet of a new workbook.
type XLSXWriter struct {
	SheetName string
}

func (w *XLSXWriter) Write(path string, records []models.StepRecord) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheet := w.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("naming worksheet %q: %w", sheet, err)
		}
	}

	columns := models.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := rec.Cells()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing task %d: %w", rec.ID, err)
		}
	}

	if err := styleHeader(f, sheet, len(columns)); err != nil {
		return err
	}
	if err := fitColumns(f, sheet, columns, records); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	slog.Debug("Workbook saved", "path", path, "sheet", sheet, "rows", len(records))
	return nil
}

func styleHeader(f *excelize.File, sheet string, ncols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(ncols, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// fitColumns sizes each column to its widest cell as it renders in a
// terminal-style fixed-width font, so wide characters count double.
func fitColumns(f *excelize.File, sheet string, columns []string, records []models.StepRecord) error {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, rec := range records {
		for i, v := range rec.Cells() {
			if w := runewidth.StringWidth(fmt.Sprint(v)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(min(max(w+2, minColumnWidth), maxColumnWidth))
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}
	return nil
}

// XLSXReader reads records from one worksheet of a workbook.
type XLSXReader struct {
	SheetName string
}

func (r *XLSXReader) Read(path string) ([]models.StepRecord, error) {
	table, err := r.Table(path)
	if err != nil {
		return nil, err
	}
	rows, err := dataset.FromTable(table)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s: %w", path, err)
	}
	records, err := dataset.DecodeRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s: %w", path, err)
	}
	return records, nil
}

// Table returns the raw cell text of the worksheet, header row first.
// Trailing empty cells of a row are omitted.
func (r *XLSXReader) Table(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	sheet, err := resolveSheet(f, r.SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %s: %w", path, err)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: reading sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	if name != "" {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			return "", fmt.Errorf("worksheet %q not found", name)
		}
		return name, nil
	}
	list := f.GetSheetList()
	if len(list) == 0 {
		return "", fmt.Errorf("workbook has no worksheets")
	}
	return list[0], nil
}
