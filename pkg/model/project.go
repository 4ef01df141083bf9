package model

import "math"

// Project groups the activities sharing a ProjectKey. It is always derived
// from an activity collection and never stored.
type Project struct {
	Key             string     `json:"key"`
	ProjectType     string     `json:"project_type"`
	Backlog         string     `json:"backlog"`
	Department      string     `json:"department"`
	Activities      []Activity `json:"activities"`
	TotalEffortDays float64    `json:"total_effort_days"`
	Completed       int        `json:"completed"`
	InProgress      int        `json:"in_progress"`
	Outstanding     int        `json:"outstanding"`
}

// NewProject starts an empty project described by its first activity.
func NewProject(a Activity) *Project {
	return &Project{
		Key:         a.ProjectKey,
		ProjectType: a.ProjectType,
		Backlog:     a.Backlog,
		Department:  a.Department,
	}
}

// Add appends a to the project. Totals rows are ignored.
func (p *Project) Add(a Activity) {
	if a.IsTotals {
		return
	}
	p.Activities = append(p.Activities, a)
	p.TotalEffortDays += a.EffortDays
	switch a.Status {
	case COMPLETE:
		p.Completed++
	case IN_PROGRESS:
		p.InProgress++
	default:
		p.Outstanding++
	}
}

// Completion classifies the project from its activities: Complete when every
// activity is complete, In Progress when any is complete or in progress,
// Outstanding otherwise.
func (p *Project) Completion() Status {
	all := true
	started := false
	for _, a := range p.Activities {
		if a.IsTotals {
			continue
		}
		if a.Status != COMPLETE {
			all = false
		}
		if a.Status == COMPLETE || a.Status == IN_PROGRESS {
			started = true
		}
	}
	switch {
	case all:
		return COMPLETE
	case started:
		return IN_PROGRESS
	default:
		return OUTSTANDING
	}
}

// Percent is the rounded share of completed activities.
func (p *Project) Percent() int {
	if len(p.Activities) == 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed) / float64(len(p.Activities)) * 100))
}
