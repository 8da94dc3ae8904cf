// Package rows turns ordered story step lists into numbered sheet rows.
package rows

import "github.com/spboyer/storysheet/internal/models"

// Build numbers the steps of a (GroupA) followed by the steps of b (GroupB).
// Ids start at 1 and run contiguously across both lists.
func Build(a, b []string) []models.StepRecord {
	return BuildStories(
		models.Story{Name: string(models.GroupA), Steps: a},
		models.Story{Name: string(models.GroupB), Steps: b},
	)
}

// BuildStories numbers the steps of every story in order. Each record's group
// is the name of the story it came from.
func BuildStories(stories ...models.Story) []models.StepRecord {
	total := 0
	for _, s := range stories {
		total += len(s.Steps)
	}

	records := make([]models.StepRecord, 0, total)
	for _, s := range stories {
		for _, step := range s.Steps {
			records = append(records, models.StepRecord{
				ID:    len(records) + 1,
				Text:  step,
				Group: models.Group(s.Name),
			})
		}
	}
	return records
}
