// Package export builds the measurement rows for a set of stories and hands
// them to a sheet writer.
package export

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/storysheet/internal/models"
	"github.com/spboyer/storysheet/internal/rows"
	"github.com/spboyer/storysheet/internal/sheet"
)

// Result describes a completed export.
type Result struct {
	Path    string
	Stories int
	Records []models.StepRecord
}

// Service writes measurement sheets.
type Service struct {
	writer sheet.Writer
	logger *slog.Logger
}

// New returns a Service that writes with w. A nil logger uses slog.Default().
func New(w sheet.Writer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{writer: w, logger: logger}
}

// Export numbers the steps of stories in order and writes them to path.
func (s *Service) Export(stories []models.Story, path string) (*Result, error) {
	records := rows.BuildStories(stories...)
	s.logger.Debug("Built measurement rows", "stories", len(stories), "rows", len(records))

	if err := s.writer.Write(path, records); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Debug("Measurement sheet written", "path", path, "rows", len(records))
	return &Result{
		Path:    path,
		Stories: len(stories),
		Records: records,
	}, nil
}
