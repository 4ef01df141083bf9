// Package filter composes the department, status, category and due-date
// predicates applied to activities, projects and to-do tasks. Every
// dimension left at "all" passes everything through.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/harrisonrobin/sheetdash/pkg/dates"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// All is the "no filter" value of every dimension.
const All = "all"

// IsAll reports whether v selects everything.
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

// DueBucket classifies a task by days until its end date.
type DueBucket string

const (
	DueAll    DueBucket = All
	Overdue   DueBucket = "overdue"
	DueToday  DueBucket = "today"
	ThisWeek  DueBucket = "this-week"
	ThisMonth DueBucket = "this-month"
	Upcoming  DueBucket = "upcoming"
)

// ParseDueBucket validates a bucket name from a flag or UI control.
func ParseDueBucket(s string) (DueBucket, error) {
	if IsAll(s) {
		return DueAll, nil
	}
	b := DueBucket(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case Overdue, DueToday, ThisWeek, ThisMonth, Upcoming:
		return b, nil
	}
	return "", fmt.Errorf("unknown due-date filter %q", s)
}

// Contains reports whether days-until-due falls in b. The week and month
// buckets overlap: a task due in 3 days is in both.
func (b DueBucket) Contains(days int) bool {
	switch b {
	case DueAll:
		return true
	case Overdue:
		return days < 0
	case DueToday:
		return days == 0
	case ThisWeek:
		return days >= 0 && days <= 7
	case ThisMonth:
		return days >= 0 && days <= 30
	case Upcoming:
		return days > 30
	}
	return false
}

// Classify returns the narrowest bucket for days.
func Classify(days int) DueBucket {
	switch {
	case days < 0:
		return Overdue
	case days == 0:
		return DueToday
	case days <= 7:
		return ThisWeek
	case days <= 30:
		return ThisMonth
	default:
		return Upcoming
	}
}

// DaysUntil is the whole number of calendar days from today to the end date
// text. ok is false when the text is unset or unparsable.
func DaysUntil(endDate string, today time.Time) (days int, ok bool) {
	end, err := dates.Parse(endDate)
	if err != nil {
		return 0, false
	}
	// Compare calendar dates in UTC so DST shifts cannot move a day.
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24), true
}

// Todo is the compound to-do filter.
type Todo struct {
	Department string
	Status     string
	Category   string
	Due        DueBucket
	// Today anchors due-date buckets; zero means time.Now().
	Today time.Time
}

// Match reports whether t passes every selected dimension.
func (f Todo) Match(t model.TodoTask) bool {
	if !IsAll(f.Department) && t.Department != f.Department {
		return false
	}
	if !matchStatus(f.Status, t.Status) {
		return false
	}
	if !IsAll(f.Category) && t.Category != f.Category {
		return false
	}
	if f.Due != "" && f.Due != DueAll {
		today := f.Today
		if today.IsZero() {
			today = time.Now()
		}
		days, ok := DaysUntil(t.EndDate, today)
		if !ok || !f.Due.Contains(days) {
			return false
		}
	}
	return true
}

// Todos returns the tasks matching f, keeping their order.
func Todos(tasks []model.TodoTask, f Todo) []model.TodoTask {
	if f.Today.IsZero() {
		f.Today = time.Now()
	}
	return lo.Filter(tasks, func(t model.TodoTask, _ int) bool { return f.Match(t) })
}

// Activities returns the activities of department, or all of them.
func Activities(activities []model.Activity, department string) []model.Activity {
	if IsAll(department) {
		return activities
	}
	return lo.Filter(activities, func(a model.Activity, _ int) bool { return a.Department == department })
}

// Projects keeps the projects whose completion classification matches status.
func Projects(projects []*model.Project, status string) []*model.Project {
	if IsAll(status) {
		return projects
	}
	return lo.Filter(projects, func(p *model.Project, _ int) bool { return matchStatus(status, p.Completion()) })
}

// CountByStatus counts tasks per canonical status.
func CountByStatus(tasks []model.TodoTask) map[model.Status]int {
	counts := lo.CountValuesBy(tasks, func(t model.TodoTask) model.Status { return t.Status })
	for _, s := range model.Statuses {
		if _, ok := counts[s]; !ok {
			counts[s] = 0
		}
	}
	return counts
}

func matchStatus(want string, got model.Status) bool {
	if IsAll(want) {
		return true
	}
	st, ok := model.ParseStatus(want)
	return ok && st == got
}
