package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row represents a single sheet row with column name to value mapping.
type Row map[string]string

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names).
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	rows, err := FromTable(records)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", path, err)
	}
	return rows, nil
}

// FromTable converts a header row plus data rows into Rows. Data rows shorter
// than the header are padded with empty values, since spreadsheet readers
// drop trailing empty cells. Rows longer than the header are an error.
func FromTable(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("table is empty (no header row)")
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) > len(headers) {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			if j < len(record) {
				row[h] = record[j]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Blank reports whether every value in the row is empty.
func (r Row) Blank() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}
