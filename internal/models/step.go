package models

// Group identifies the story a step belongs to. Its value is the label
// written to the "Story Name" column.
type Group string

const (
	GroupA Group = "Story 1"
	GroupB Group = "Story 2"
)

// Column headers of the measurement sheet, in sheet order.
const (
	ColumnTaskID    = "Task ID"
	ColumnTaskName  = "Task Name"
	ColumnStoryName = "Story Name"
	ColumnTimeTaken = "Time Taken (s)"
	ColumnErrors    = "Errors"
	ColumnComments  = "Comments"
)

// Columns returns the header row of the measurement sheet.
func Columns() []string {
	return []string{
		ColumnTaskID,
		ColumnTaskName,
		ColumnStoryName,
		ColumnTimeTaken,
		ColumnErrors,
		ColumnComments,
	}
}

// Story is a named usability-test scenario with its ordered steps.
type Story struct {
	Name  string   `yaml:"name" json:"name"`
	Steps []string `yaml:"steps" json:"steps"`
}

// StepRecord is one row of the measurement sheet. The measurement fields
// are nil until someone fills them in.
type StepRecord struct {
	ID              int      `mapstructure:"Task ID" json:"task_id"`
	Text            string   `mapstructure:"Task Name" json:"task_name"`
	Group           Group    `mapstructure:"Story Name" json:"story_name"`
	DurationSeconds *float64 `mapstructure:"Time Taken (s)" json:"time_taken_s,omitempty"`
	ErrorCount      *int     `mapstructure:"Errors" json:"errors,omitempty"`
	Notes           *string  `mapstructure:"Comments" json:"comments,omitempty"`
}

// Measured reports whether a duration has been recorded for the step.
func (r StepRecord) Measured() bool {
	return r.DurationSeconds != nil
}

// Cells returns the row values in column order. Absent measurements are
// empty strings.
func (r StepRecord) Cells() []any {
	cells := []any{r.ID, r.Text, string(r.Group), "", "", ""}
	if r.DurationSeconds != nil {
		cells[3] = *r.DurationSeconds
	}
	if r.ErrorCount != nil {
		cells[4] = *r.ErrorCount
	}
	if r.Notes != nil {
		cells[5] = *r.Notes
	}
	return cells
}
