package model

import "strings"

// Status is the canonical state of an activity, a to-do task or a whole project.
type Status string

const (
	COMPLETE    Status = "Complete"
	IN_PROGRESS Status = "In Progress"
	OUTSTANDING Status = "Outstanding"
)

// Statuses lists the canonical states in display order.
var Statuses = []Status{COMPLETE, IN_PROGRESS, OUTSTANDING}

// NormalizeStatus maps raw cell text to a canonical Status.
// Unrecognised text is Outstanding, never Complete.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "done", "completed", "complete":
		return COMPLETE
	case "in progress", "progress":
		return IN_PROGRESS
	}
	// "", "-", "nan" and anything else
	return OUTSTANDING
}

// ParseStatus accepts a canonical status name, case-insensitively.
// "all" and "" yield ok=false so callers can treat them as no filter.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inprogress", "in-progress", "progress":
		return IN_PROGRESS, true
	}
	return "", false
}
