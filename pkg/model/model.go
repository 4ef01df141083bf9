package model

import (
	"regexp"
	"strings"
)

const (
	// Unset marks an absent text or date cell.
	Unset = "-"
	// Uncategorized is the bucket for to-do rows without a category.
	Uncategorized = "Uncategorized"
	// Unassigned is shown for to-do rows without a person in charge.
	Unassigned = "Unassigned"
	// TotalsMarker flags a row that holds a sum rather than an activity.
	TotalsMarker = "total mandays"
)

var whitespace = regexp.MustCompile(`\s+`)

// IsBlank reports whether a cell is empty, whitespace or the "-" placeholder.
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Unset
}

// OrUnset returns s, or Unset when s is blank.
func OrUnset(s string) string {
	if IsBlank(s) {
		return Unset
	}
	return strings.TrimSpace(s)
}

// Activity is one row of a department project sheet.
type Activity struct {
	Sequence    string  `json:"sequence"`
	ProjectType string  `json:"project_type"`
	Backlog     string  `json:"backlog"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Role        string  `json:"role"`
	EffortDays  float64 `json:"effort_days"`
	Status      Status  `json:"status"`
	PlanStart   string  `json:"plan_start"`
	PlanEnd     string  `json:"plan_end"`
	ActualStart string  `json:"actual_start"`
	ActualEnd   string  `json:"actual_end"`
	Department  string  `json:"department"`
	ProjectKey  string  `json:"project_key"`
	IsTotals    bool    `json:"is_totals"`
}

// ProjectKey joins department, project type and backlog and collapses
// whitespace runs to "_".
func ProjectKey(department, projectType, backlog string) string {
	return whitespace.ReplaceAllString(department+"_"+projectType+"_"+backlog, "_")
}

// IsDegenerate reports whether the activity has neither a project type nor a backlog.
func (a Activity) IsDegenerate() bool {
	return IsBlank(a.ProjectType) && IsBlank(a.Backlog)
}

// TodoTask is one row of the to-do sheet.
type TodoTask struct {
	Sequence   string `json:"sequence"`
	Type       string `json:"type"`
	Department string `json:"department"`
	Category   string `json:"category"`
	Item       string `json:"item"`
	PIC        string `json:"pic"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     Status `json:"status"`
}

// PriorityLabel turns numeric or free-text priorities into High/Medium/Low.
// Anything else is returned as is.
func PriorityLabel(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "1", "high":
		return "High"
	case "2", "medium":
		return "Medium"
	case "3", "low":
		return "Low"
	}
	return p
}
