package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spboyer/storysheet/internal/dataset"
	"github.com/spboyer/storysheet/internal/models"
)

// CSVWriter writes records as comma-separated values.
type CSVWriter struct{}

func (CSVWriter) Write(path string, records []models.StepRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csv: close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(models.Columns()); err != nil {
		return fmt.Errorf("csv: writing header: %w", err)
	}
	for _, rec := range records {
		cells := rec.Cells()
		line := make([]string, len(cells))
		for i, c := range cells {
			line[i] = formatCell(c)
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("csv: writing task %d: %w", rec.ID, err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// CSVReader reads records from a CSV file with a header row.
type CSVReader struct{}

func (CSVReader) Read(path string) ([]models.StepRecord, error) {
	rows, err := dataset.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	records, err := dataset.DecodeRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", path, err)
	}
	return records, nil
}
