package model

import "testing"

func activity(key string, status Status, effort float64, totals bool) Activity {
	return Activity{ProjectKey: key, ProjectType: "A", Backlog: "B", Department: "Riset", Status: status, EffortDays: effort, IsTotals: totals}
}

func projectOf(statuses ...Status) *Project {
	p := NewProject(activity("k", OUTSTANDING, 0, false))
	for _, s := range statuses {
		p.Add(activity("k", s, 1, false))
	}
	return p
}

func TestProjectCompletion(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all complete", []Status{COMPLETE, COMPLETE}, COMPLETE},
		{"partly complete", []Status{COMPLETE, OUTSTANDING}, IN_PROGRESS},
		{"in progress", []Status{IN_PROGRESS, OUTSTANDING}, IN_PROGRESS},
		{"nothing started", []Status{OUTSTANDING, OUTSTANDING}, OUTSTANDING},
	}
	for _, tt := range tests {
		if got := projectOf(tt.statuses...).Completion(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestProjectAddIgnoresTotals(t *testing.T) {
	p := projectOf(COMPLETE, COMPLETE)
	p.Add(activity("k", OUTSTANDING, 40, true))

	if len(p.Activities) != 2 {
		t.Errorf("Expected 2 activities, got %d", len(p.Activities))
	}
	if p.TotalEffortDays != 2 {
		t.Errorf("Expected 2 effort days, got %v", p.TotalEffortDays)
	}
	if p.Completion() != COMPLETE {
		t.Errorf("Expected totals row not to affect completion, got %q", p.Completion())
	}
	if p.Completed != 2 || p.Outstanding != 0 {
		t.Errorf("Unexpected counts: %+v", p)
	}
}

func TestProjectPercent(t *testing.T) {
	if got := projectOf(COMPLETE, OUTSTANDING, OUTSTANDING).Percent(); got != 33 {
		t.Errorf("Expected 33, got %d", got)
	}
	if got := projectOf().Percent(); got != 0 {
		t.Errorf("Expected 0 for empty project, got %d", got)
	}
}

func TestProjectKey(t *testing.T) {
	if got := ProjectKey("System Development", "Core  App", "Q1 backlog"); got != "System_Development_Core_App_Q1_backlog" {
		t.Errorf("Unexpected key: %s", got)
	}
}

func TestPriorityLabel(t *testing.T) {
	tests := map[string]string{"1": "High", "HIGH": "High", "2": "Medium", "3": "Low", "low": "Low", "urgent": "urgent", "-": "-"}
	for in, want := range tests {
		if got := PriorityLabel(in); got != want {
			t.Errorf("PriorityLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "-", " - "} {
		if !IsBlank(s) {
			t.Errorf("Expected %q to be blank", s)
		}
	}
	if IsBlank("--") || IsBlank("x") {
		t.Error("Expected non-placeholder text not to be blank")
	}
}
