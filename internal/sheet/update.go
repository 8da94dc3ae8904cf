package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spboyer/storysheet/internal/models"
	"github.com/xuri/excelize/v2"
)

// ErrTaskNotFound is returned when no row carries the requested Task ID.
var ErrTaskNotFound = errors.New("task not found")

var measurementColumns = []string{
	models.ColumnTimeTaken,
	models.ColumnErrors,
	models.ColumnComments,
}

// UpdateMeasurement overwrites the time, errors and comments cells of the row
// whose Task ID is rec.ID. Id, name and story cells are left untouched.
func UpdateMeasurement(path string, opts Options, rec models.StepRecord) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	if format == FormatCSV {
		return updateCSV(path, rec)
	}
	return updateXLSX(path, opts.SheetName, rec)
}

func updateXLSX(path, sheetName string, rec models.StepRecord) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("xlsx: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	sheet, err := resolveSheet(f, sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: %s: %w", path, err)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("xlsx: reading sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("xlsx: %s: sheet %q has no header row", path, sheet)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[h] = i
	}
	for _, col := range append([]string{models.ColumnTaskID}, measurementColumns...) {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("xlsx: %s: missing column %q", path, col)
		}
	}

	want := strconv.Itoa(rec.ID)
	target := 0
	for i, row := range rows[1:] {
		idCol := index[models.ColumnTaskID]
		if idCol < len(row) && strings.TrimSpace(row[idCol]) == want {
			target = i + 2
			break
		}
	}
	if target == 0 {
		return fmt.Errorf("task %d: %w", rec.ID, ErrTaskNotFound)
	}

	cells := rec.Cells()
	for i, col := range measurementColumns {
		cell, err := excelize.CoordinatesToCellName(index[col]+1, target)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, cells[3+i]); err != nil {
			return fmt.Errorf("xlsx: setting %s: %w", cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("xlsx: saving %s: %w", path, err)
	}
	return nil
}

func updateCSV(path string, rec models.StepRecord) error {
	records, err := CSVReader{}.Read(path)
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].ID == rec.ID {
			records[i].DurationSeconds = rec.DurationSeconds
			records[i].ErrorCount = rec.ErrorCount
			records[i].Notes = rec.Notes
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("task %d: %w", rec.ID, ErrTaskNotFound)
	}
	return CSVWriter{}.Write(path, records)
}

// Find returns the record with the given Task ID.
func Find(records []models.StepRecord, id int) (models.StepRecord, error) {
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.StepRecord{}, fmt.Errorf("task %d: %w", id, ErrTaskNotFound)
}
