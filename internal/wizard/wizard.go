package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/storysheet/internal/models"
	"golang.org/x/term"
)

// ClearValue typed into a field removes the recorded value.
const ClearValue = "-"

// MeasurementInput holds the raw answers collected by the form.
type MeasurementInput struct {
	Duration string
	Errors   string
	Comments string
}

// InputFromRecord pre-fills the form answers with the step's current values.
func InputFromRecord(step models.StepRecord) MeasurementInput {
	var in MeasurementInput
	if step.DurationSeconds != nil {
		in.Duration = strconv.FormatFloat(*step.DurationSeconds, 'f', -1, 64)
	}
	if step.ErrorCount != nil {
		in.Errors = strconv.Itoa(*step.ErrorCount)
	}
	if step.Notes != nil {
		in.Comments = *step.Notes
	}
	return in
}

// RunMeasurementForm runs an interactive huh form to collect the time taken,
// error count and comments for one step. Answers start from the step's
// current values; a blank answer leaves the field absent and "-" clears it.
func RunMeasurementForm(in io.Reader, out io.Writer, step models.StepRecord) (models.StepRecord, error) {
	answers := InputFromRecord(step)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	accessible := true
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		accessible = false
	}
	if accessible {
		// each accessible field scans in with its own bufio.Scanner
		in = oneByteReader{in}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Task %d · %s", step.ID, step.Group)).
				Description(step.Text),
			huh.NewInput().
				Title("Time taken (s)").
				Description("Seconds the participant needed for this step").
				Placeholder("e.g. 42.5").
				Value(&answers.Duration).
				Validate(validateDuration),
			huh.NewInput().
				Title("Errors").
				Description("Number of errors observed").
				Placeholder("0").
				Value(&answers.Errors).
				Validate(validateErrors),
			huh.NewText().
				Title("Comments").
				Description("Observations, quotes, hesitations").
				Value(&answers.Comments),
		),
	).
		WithInput(in).
		WithOutput(out).
		WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return models.StepRecord{}, fmt.Errorf("measurement form failed: %w", err)
	}

	return ParseMeasurement(step, answers)
}

// oneByteReader hands out input a byte at a time so a scanner never buffers
// past the line it was asked for.
type oneByteReader struct {
	r io.Reader
}

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

// ParseMeasurement applies the raw answers to step. Identity fields are
// never changed.
func ParseMeasurement(step models.StepRecord, in MeasurementInput) (models.StepRecord, error) {
	out := models.StepRecord{ID: step.ID, Text: step.Text, Group: step.Group}

	if d := strings.TrimSpace(in.Duration); d != "" && d != ClearValue {
		if err := validateDuration(d); err != nil {
			return models.StepRecord{}, err
		}
		v, _ := strconv.ParseFloat(d, 64)
		out.DurationSeconds = &v
	}

	if e := strings.TrimSpace(in.Errors); e != "" && e != ClearValue {
		if err := validateErrors(e); err != nil {
			return models.StepRecord{}, err
		}
		v, _ := strconv.Atoi(e)
		out.ErrorCount = &v
	}

	if c := strings.TrimSpace(in.Comments); c != "" && c != ClearValue {
		out.Notes = &c
	}

	return out, nil
}

func validateDuration(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == ClearValue {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("time taken must be a number of seconds, got %q", s)
	}
	if v < 0 {
		return fmt.Errorf("time taken cannot be negative")
	}
	return nil
}

func validateErrors(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == ClearValue {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("errors must be a whole number, got %q", s)
	}
	if v < 0 {
		return fmt.Errorf("errors cannot be negative")
	}
	return nil
}
