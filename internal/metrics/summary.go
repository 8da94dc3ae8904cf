package metrics

import "github.com/spboyer/storysheet/internal/models"

// StorySummary aggregates the recorded measurements of one story.
type StorySummary struct {
	Story            models.Group `json:"story"`
	Steps            int          `json:"steps"`
	Measured         int          `json:"measured"`
	TotalSeconds     float64      `json:"total_seconds"`
	MeanSeconds      float64      `json:"mean_seconds"`
	StdDevSeconds    float64      `json:"stddev_seconds"`
	CILowSeconds     float64      `json:"ci95_low_seconds"`
	CIHighSeconds    float64      `json:"ci95_high_seconds"`
	TotalErrors      int          `json:"total_errors"`
	StepsWithErrors  int          `json:"steps_with_errors"`
	StepsWithComment int          `json:"steps_with_comments"`
}

// Completion returns the fraction of steps that have a recorded duration.
func (s StorySummary) Completion() float64 {
	if s.Steps == 0 {
		return 0
	}
	return float64(s.Measured) / float64(s.Steps)
}

// Summarize groups records by story, in the order each story first appears.
// Duration statistics only cover steps with a recorded time.
func Summarize(records []models.StepRecord) []StorySummary {
	var order []models.Group
	durations := map[models.Group][]float64{}
	byStory := map[models.Group]*StorySummary{}

	for _, r := range records {
		s, ok := byStory[r.Group]
		if !ok {
			s = &StorySummary{Story: r.Group}
			byStory[r.Group] = s
			order = append(order, r.Group)
		}
		s.Steps++
		if r.DurationSeconds != nil {
			s.Measured++
			durations[r.Group] = append(durations[r.Group], *r.DurationSeconds)
		}
		if r.ErrorCount != nil {
			s.TotalErrors += *r.ErrorCount
			if *r.ErrorCount > 0 {
				s.StepsWithErrors++
			}
		}
		if r.Notes != nil && *r.Notes != "" {
			s.StepsWithComment++
		}
	}

	out := make([]StorySummary, 0, len(order))
	for _, g := range order {
		s := byStory[g]
		d := durations[g]
		for _, v := range d {
			s.TotalSeconds += v
		}
		s.MeanSeconds = Mean(d)
		s.StdDevSeconds = StdDev(d)
		s.CILowSeconds, s.CIHighSeconds = ConfidenceInterval95(d)
		out = append(out, *s)
	}
	return out
}
