// Package sheet writes step records to spreadsheet files and reads them back.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spboyer/storysheet/internal/models"
)

//go:generate go tool mockgen -source sheet.go -destination mock_writer.go -package sheet

// Format names an output file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DefaultSheetName matches the worksheet name spreadsheet tools create by default.
const DefaultSheetName = "Sheet1"

// Writer writes a header row followed by one row per record.
type Writer interface {
	Write(path string, records []models.StepRecord) error
}

// Reader reads records back from a file written by a Writer.
type Reader interface {
	Read(path string) ([]models.StepRecord, error)
}

// Options configure the spreadsheet writers and readers.
type Options struct {
	// SheetName is the worksheet to write or read. Empty means
	// DefaultSheetName when writing and the first worksheet when reading.
	SheetName string
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: must be xlsx or csv", s)
	}
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot determine format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// WriterFor returns the writer for format.
func WriterFor(format Format, opts Options) (Writer, error) {
	switch format {
	case FormatXLSX:
		return &XLSXWriter{SheetName: opts.SheetName}, nil
	case FormatCSV:
		return CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("no writer for format %q", format)
	}
}

// ReaderFor returns the reader matching the extension of path.
func ReaderFor(path string, opts Options) (Reader, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return &XLSXReader{SheetName: opts.SheetName}, nil
	default:
		return CSVReader{}, nil
	}
}

// Describe returns the label used in confirmation messages for format.
func Describe(format Format) string {
	if format == FormatCSV {
		return "CSV"
	}
	return "Excel"
}
