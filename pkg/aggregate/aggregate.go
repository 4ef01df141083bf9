// Package aggregate groups activities into projects and computes the
// dashboard statistics. Every function is pure and recomputes from the
// activity collection it is given.
package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// TopProjects is the number of projects in the home-page preview.
const TopProjects = 5

// Projects groups activities by ProjectKey in first-seen order. Totals rows
// and activities without project type and backlog are left out.
func Projects(activities []model.Activity) []*model.Project {
	byKey := make(map[string]*model.Project)
	var ordered []*model.Project
	for _, a := range activities {
		if a.IsTotals || a.IsDegenerate() || a.ProjectKey == "" {
			continue
		}
		p, ok := byKey[a.ProjectKey]
		if !ok {
			p = model.NewProject(a)
			byKey[a.ProjectKey] = p
			ordered = append(ordered, p)
		}
		p.Add(a)
	}
	return ordered
}

// Top returns at most n projects from the front of the list.
func Top(projects []*model.Project, n int) []*model.Project {
	if n < 0 || len(projects) <= n {
		return projects
	}
	return projects[:n]
}

// Summary holds the home-page counters.
type Summary struct {
	TotalProjects   int     `json:"total_projects"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"in_progress"`
	Outstanding     int     `json:"outstanding"`
	TotalEffortDays float64 `json:"total_effort_days"`
}

// Summarize counts projects per completion classification and sums effort.
func Summarize(projects []*model.Project) Summary {
	s := Summary{TotalProjects: len(projects)}
	for _, p := range projects {
		switch p.Completion() {
		case model.COMPLETE:
			s.Completed++
		case model.IN_PROGRESS:
			s.InProgress++
		default:
			s.Outstanding++
		}
		s.TotalEffortDays += p.TotalEffortDays
	}
	return s
}

// Slice is one department of the breakdown chart.
type Slice struct {
	Department string `json:"department"`
	Projects   int    `json:"projects"`
}

// Breakdown is the number of projects per department.
type Breakdown struct {
	Slices []Slice `json:"slices"`
	Total  int     `json:"total"`
}

// DepartmentBreakdown counts projects per department. Known departments come
// first in the given order, even with zero projects; any other department
// follows in first-seen order.
func DepartmentBreakdown(projects []*model.Project, departments []string) Breakdown {
	counts := lo.CountValuesBy(projects, func(p *model.Project) string { return p.Department })

	var b Breakdown
	seen := make(map[string]bool)
	for _, d := range departments {
		seen[d] = true
		b.Slices = append(b.Slices, Slice{Department: d, Projects: counts[d]})
	}
	for _, p := range projects {
		if !seen[p.Department] {
			seen[p.Department] = true
			b.Slices = append(b.Slices, Slice{Department: p.Department, Projects: counts[p.Department]})
		}
	}
	for _, s := range b.Slices {
		b.Total += s.Projects
	}
	return b
}

// Detail is the drill-down view of one project. Totals rows are kept apart
// from the regular activities.
type Detail struct {
	Key         string           `json:"key"`
	ProjectType string           `json:"project_type"`
	Backlog     string           `json:"backlog"`
	Department  string           `json:"department"`
	Activities  []model.Activity `json:"activities"`
	Totals      []model.Activity `json:"totals"`
}

// ProjectDetail looks a project up by key directly in the activity
// collection, totals rows included.
func ProjectDetail(activities []model.Activity, key string) (Detail, bool) {
	var d Detail
	found := false
	for _, a := range activities {
		if a.ProjectKey != key {
			continue
		}
		if !found {
			d = Detail{Key: key, ProjectType: a.ProjectType, Backlog: a.Backlog, Department: a.Department}
			found = true
		}
		if a.IsTotals {
			d.Totals = append(d.Totals, a)
		} else {
			d.Activities = append(d.Activities, a)
		}
	}
	return d, found
}

// Debug is a diagnostic overview of a loaded collection.
type Debug struct {
	Activities   int                  `json:"activities"`
	Todos        int                  `json:"todos"`
	PerDept      map[string]int       `json:"activities_per_department"`
	ProjectTypes []string             `json:"project_types"`
	Statuses     map[model.Status]int `json:"statuses"`
	Categories   []string             `json:"categories"`
}

// DebugInfo summarises activities and to-do tasks.
func DebugInfo(activities []model.Activity, todos []model.TodoTask) Debug {
	types := lo.Uniq(lo.FilterMap(activities, func(a model.Activity, _ int) (string, bool) {
		return a.ProjectType, !model.IsBlank(a.ProjectType)
	}))
	sort.Strings(types)
	return Debug{
		Activities:   len(activities),
		Todos:        len(todos),
		PerDept:      lo.CountValuesBy(activities, func(a model.Activity) string { return a.Department }),
		ProjectTypes: types,
		Statuses:     lo.CountValuesBy(activities, func(a model.Activity) model.Status { return a.Status }),
		Categories:   lo.Uniq(lo.Map(todos, func(t model.TodoTask, _ int) string { return t.Category })),
	}
}
