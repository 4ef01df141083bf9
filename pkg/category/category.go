// Package category groups to-do tasks by category for the list views.
package category

import (
	"fmt"

	"github.com/harrisonrobin/sheetdash/pkg/dates"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// PreviewCategories is the number of categories in the home-page list.
const PreviewCategories = 6

// Group is the tasks of one category in input order.
type Group struct {
	Category string           `json:"category"`
	Tasks    []model.TodoTask `json:"tasks"`
}

// GroupTasks groups tasks by exact category text. Categories keep their
// first-appearance order except Uncategorized, which always goes last.
func GroupTasks(tasks []model.TodoTask) []Group {
	index := make(map[string]int)
	var groups []Group
	uncategorized := -1
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, Group{Category: t.Category})
			if t.Category == model.Uncategorized {
				uncategorized = i
			}
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	if uncategorized >= 0 && uncategorized != len(groups)-1 {
		last := groups[uncategorized]
		groups = append(groups[:uncategorized], groups[uncategorized+1:]...)
		groups = append(groups, last)
	}
	return groups
}

// Categories returns the category labels in grouping order.
func Categories(tasks []model.TodoTask) []string {
	groups := GroupTasks(tasks)
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Category
	}
	return out
}

// Preview is a capped list of groups plus what was left out.
type Preview struct {
	Groups           []Group `json:"groups"`
	HiddenTasks      int     `json:"hidden_tasks"`
	HiddenCategories int     `json:"hidden_categories"`
}

// NewPreview keeps the first limit groups. A negative limit keeps all.
func NewPreview(groups []Group, limit int) Preview {
	if limit < 0 || len(groups) <= limit {
		return Preview{Groups: groups}
	}
	p := Preview{Groups: groups[:limit], HiddenCategories: len(groups) - limit}
	for _, g := range groups[limit:] {
		p.HiddenTasks += len(g.Tasks)
	}
	return p
}

// More is the "+N more tasks in M categories" indicator, or "" when nothing
// was hidden.
func (p Preview) More() string {
	if p.HiddenCategories == 0 {
		return ""
	}
	return fmt.Sprintf("+%d more tasks in %d categories", p.HiddenTasks, p.HiddenCategories)
}

// Card is the preview of one category: its first task and a count of the rest.
type Card struct {
	Category   string       `json:"category"`
	Department string       `json:"department"`
	Item       string       `json:"item"`
	PIC        string       `json:"pic"`
	Status     model.Status `json:"status"`
	DateLabel  string       `json:"date_label"`
	DateRange  string       `json:"date_range"`
	More       int          `json:"more"`
}

// NewCard builds the card for a non-empty group.
func NewCard(g Group) Card {
	if len(g.Tasks) == 0 {
		return Card{Category: g.Category}
	}
	t := g.Tasks[0]
	label, rng := dateText(t.StartDate, t.EndDate)
	return Card{
		Category:   g.Category,
		Department: t.Department,
		Item:       t.Item,
		PIC:        t.PIC,
		Status:     t.Status,
		DateLabel:  label,
		DateRange:  rng,
		More:       len(g.Tasks) - 1,
	}
}

func dateText(start, end string) (label, rng string) {
	hasStart, hasEnd := !model.IsBlank(start), !model.IsBlank(end)
	switch {
	case hasStart && hasEnd:
		return "Scheduled", dates.Display(start, dates.FullIndonesian) + " - " + dates.Display(end, dates.FullIndonesian)
	case hasStart:
		return "Started", dates.Display(start, dates.FullIndonesian)
	case hasEnd:
		return "Deadline", dates.Display(end, dates.FullIndonesian)
	default:
		return "Not Started", ""
	}
}
