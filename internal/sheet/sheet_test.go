package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spboyer/storysheet/internal/models"
	"github.com/spboyer/storysheet/internal/rows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"xlsx", FormatXLSX, false},
		{" XLSX ", FormatXLSX, false},
		{"csv", FormatCSV, false},
		{"ods", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("out/StoryMeasurements.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = FormatForPath("measurements.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatForPath("measurements")
	require.Error(t, err)
}

func TestWriterFor(t *testing.T) {
	w, err := WriterFor(FormatXLSX, Options{SheetName: "Measurements"})
	require.NoError(t, err)
	assert.Equal(t, &XLSXWriter{SheetName: "Measurements"}, w)

	w, err = WriterFor(FormatCSV, Options{})
	require.NoError(t, err)
	assert.Equal(t, CSVWriter{}, w)

	_, err = WriterFor("pdf", Options{})
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Excel", Describe(FormatXLSX))
	assert.Equal(t, "CSV", Describe(FormatCSV))
}

func TestXLSX_RoundTrip(t *testing.T) {
	records := rows.Build([]string{"x", "  padded step  "}, []string{"z"})
	path := filepath.Join(t.TempDir(), "StoryMeasurements.xlsx")

	require.NoError(t, (&XLSXWriter{}).Write(path, records))

	r := &XLSXReader{}
	table, err := r.Table(path)
	require.NoError(t, err)
	require.Len(t, table, 4)
	assert.Equal(t, models.Columns(), table[0])
	assert.Equal(t, []string{"1", "x", "Story 1"}, table[1][:3])
	assert.Equal(t, []string{"2", "  padded step  ", "Story 1"}, table[2][:3])
	assert.Equal(t, []string{"3", "z", "Story 2"}, table[3][:3])

	// measurement cells are empty; trailing empties may be dropped on read
	for _, row := range table[1:] {
		require.GreaterOrEqual(t, len(row), 3)
		for _, cell := range row[3:] {
			assert.Empty(t, cell)
		}
	}

	got, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestXLSX_RoundTripWideText(t *testing.T) {
	records := rows.Build([]string{"タスクを追加する", "Add phone bill to To-Do list"}, nil)
	path := filepath.Join(t.TempDir(), "wide.xlsx")

	require.NoError(t, (&XLSXWriter{}).Write(path, records))

	got, err := (&XLSXReader{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestXLSX_NamedSheet(t *testing.T) {
	records := rows.Build([]string{"x"}, nil)
	path := filepath.Join(t.TempDir(), "named.xlsx")

	require.NoError(t, (&XLSXWriter{SheetName: "Measurements"}).Write(path, records))

	got, err := (&XLSXReader{SheetName: "Measurements"}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	// first sheet is used when no name is given
	got, err = (&XLSXReader{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = (&XLSXReader{SheetName: "Missing"}).Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `worksheet "Missing" not found`)
}

func TestXLSX_EmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, (&XLSXWriter{}).Write(path, nil))

	table, err := (&XLSXReader{}).Table(path)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, models.Columns(), table[0])
}

func TestXLSX_WriteToMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.xlsx")
	err := (&XLSXWriter{}).Write(path, rows.Build([]string{"x"}, nil))
	require.Error(t, err)
}

func TestCSV_RoundTrip(t *testing.T) {
	records := rows.Build([]string{"x", "y, with comma", "  padded step  "}, []string{`z "quoted"`})
	notes := "  trailing note  "
	records[0].Notes = &notes
	path := filepath.Join(t.TempDir(), "StoryMeasurements.csv")

	require.NoError(t, CSVWriter{}.Write(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Task ID,Task Name,Story Name,Time Taken (s),Errors,Comments\n1,x,Story 1,,,\"  trailing note  \"\n")

	got, err := CSVReader{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReaderFor(t *testing.T) {
	r, err := ReaderFor("a.xlsx", Options{SheetName: "S"})
	require.NoError(t, err)
	assert.Equal(t, &XLSXReader{SheetName: "S"}, r)

	r, err = ReaderFor("a.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, CSVReader{}, r)

	_, err = ReaderFor("a.txt", Options{})
	require.Error(t, err)
}

func TestUpdateMeasurement(t *testing.T) {
	for _, ext := range []string{"xlsx", "csv"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "m."+ext)
			records := rows.Build([]string{"  x  ", "y"}, []string{"z"})

			format, err := ParseFormat(ext)
			require.NoError(t, err)
			w, err := WriterFor(format, Options{})
			require.NoError(t, err)
			require.NoError(t, w.Write(path, records))

			d := 42.5
			n := 1
			notes := "missed the share button"
			update := models.StepRecord{ID: 2, DurationSeconds: &d, ErrorCount: &n, Notes: &notes}
			require.NoError(t, UpdateMeasurement(path, Options{}, update))

			r, err := ReaderFor(path, Options{})
			require.NoError(t, err)
			got, err := r.Read(path)
			require.NoError(t, err)
			require.Len(t, got, 3)

			assert.Equal(t, records[0], got[0])
			assert.Equal(t, records[2], got[2])

			rec := got[1]
			assert.Equal(t, 2, rec.ID)
			assert.Equal(t, "y", rec.Text)
			assert.Equal(t, models.GroupA, rec.Group)
			require.NotNil(t, rec.DurationSeconds)
			assert.InDelta(t, 42.5, *rec.DurationSeconds, 1e-9)
			require.NotNil(t, rec.ErrorCount)
			assert.Equal(t, 1, *rec.ErrorCount)
			require.NotNil(t, rec.Notes)
			assert.Equal(t, notes, *rec.Notes)

			// clearing a measurement writes an empty cell again
			require.NoError(t, UpdateMeasurement(path, Options{}, models.StepRecord{ID: 2}))
			got, err = r.Read(path)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestUpdateMeasurement_UnknownTask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.xlsx")
	require.NoError(t, (&XLSXWriter{}).Write(path, rows.Build([]string{"x"}, nil)))

	err := UpdateMeasurement(path, Options{}, models.StepRecord{ID: 99})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTaskNotFound))
}

func TestFind(t *testing.T) {
	records := rows.Build([]string{"x"}, []string{"z"})

	got, err := Find(records, 2)
	require.NoError(t, err)
	assert.Equal(t, "z", got.Text)

	_, err = Find(records, 3)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
