package dataset

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/storysheet/internal/models"
)

var requiredColumns = []string{
	models.ColumnTaskID,
	models.ColumnTaskName,
	models.ColumnStoryName,
}

// numericColumns are trimmed before decoding. Text cells are kept verbatim.
var numericColumns = map[string]bool{
	models.ColumnTaskID:    true,
	models.ColumnTimeTaken: true,
	models.ColumnErrors:    true,
}

// DecodeRecords converts sheet rows into step records. Empty cells leave the
// matching field unset and blank rows are skipped. Errors name the 1-based
// sheet row (the header is row 1).
func DecodeRecords(rows []Row) ([]models.StepRecord, error) {
	records := make([]models.StepRecord, 0, len(rows))

	for i, row := range rows {
		sheetRow := i + 2
		if row.Blank() {
			continue
		}

		for _, col := range requiredColumns {
			if _, ok := row[col]; !ok {
				return nil, fmt.Errorf("row %d: missing column %q", sheetRow, col)
			}
		}

		input := make(map[string]any, len(row))
		for k, v := range row {
			if numericColumns[k] {
				v = strings.TrimSpace(v)
			}
			if v != "" {
				input[k] = v
			}
		}

		var rec models.StepRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &rec,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(input); err != nil {
			return nil, fmt.Errorf("row %d: %w", sheetRow, err)
		}
		if rec.ID <= 0 {
			return nil, fmt.Errorf("row %d: %q must be a positive integer", sheetRow, models.ColumnTaskID)
		}

		records = append(records, rec)
	}

	return records, nil
}
