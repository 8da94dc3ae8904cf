// Package stories holds the usability-test story lists that feed the
// measurement sheet, and loads replacement lists from YAML or Markdown files.
package stories

import "github.com/spboyer/storysheet/internal/models"

var story1Steps = []string{
	"Story 1: Add phone bill to To-Do list",
	"Story 1: Generate extra tasks",
	"Story 1: Add shopping with daughter to Hobbies and share",
	"Story 1: Share lamp fixing task with husband",
	"Story 1: Adjust limits to see one task per category",
	"Story 1: Enable streak tracking and set goal to 2 days",
	"Story 1: View daily overview on homepage",
	"Story 1: Complete project report and yoga tasks",
	"Story 1: Check progress in visuals (Daughter's tasks)",
	"Story 1: Complete all tasks for today",
	"Story 1: Start a new day",
	"Story 1: Adjust hobbies for Day 2 and complete tasks",
	"Story 1: Adjust streak goal to 7 days after reaching it",
	"Story 1: View completed tasks for motivation",
	"Story 1: Check percentage of completed Hobbies tasks",
	"Story 1: Hide completed tasks",
	"Story 1: Delete all completed tasks",
	"Story 1: Complete meditation for Day 3",
	"Story 1: Start a new day without completing all tasks",
	"Story 1: Check streak high score",
	"Story 1: Sort Hobbies by shared users",
	"Story 1: Create shared category 'Baby' with husband",
	"Story 1: Delete shopping task for daughter",
	"Story 1: Delete all app data",
}

var story2Steps = []string{
	"Story 2: Generate extra tasks",
	"Story 2: Add task for monthly budget review",
	"Story 2: Share yoga task with daughter",
	"Story 2: Enable streak tracking with a goal of 3 days",
	"Story 2: Check daily overview",
	"Story 2: Complete reading task and workout task",
	"Story 2: Check visuals for son's mental load",
	"Story 2: Adjust hobbies for Day 2 and complete tasks",
	"Story 2: Start a new day",
	"Story 2: View completed tasks for motivation",
	"Story 2: Adjust streak goal to 5 days after achieving it",
	"Story 2: Delete completed Hobbies tasks",
	"Story 2: Add travel itinerary task and share it",
	"Story 2: Start a new day without completing all tasks",
	"Story 2: Sort Household by deadlines",
	"Story 2: Check percentage of completed Work tasks",
	"Story 2: Delete travel itinerary task",
	"Story 2: Create a new shared category with the family",
	"Story 2: Add a shopping list to Household",
	"Story 2: Check streak progress and high score",
}

// Builtin returns the two built-in stories. The returned slices are copies
// and may be modified by the caller.
func Builtin() []models.Story {
	return []models.Story{
		{Name: string(models.GroupA), Steps: append([]string(nil), story1Steps...)},
		{Name: string(models.GroupB), Steps: append([]string(nil), story2Steps...)},
	}
}
