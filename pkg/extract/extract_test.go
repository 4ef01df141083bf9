package extract

import (
	"testing"

	"github.com/harrisonrobin/sheetdash/pkg/columns"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

var header = []string{"No", "Project Type", "Backlog", "Priority", "Aktivitas", "Role", "Mandays", "Status", "Plan", "", "Actual", ""}

func TestActivitiesCarryForward(t *testing.T) {
	grid := [][]string{
		header,
		{"1", "A", "B1", "1", "d1", "PM", "2", "Done"},
		{"2", "", "", "", "d2", "Dev", "3", "in progress"},
		{"3", "C", "", "", "d3", "QA", "1", ""},
	}
	acts := Activities("Riset", grid)
	if len(acts) != 3 {
		t.Fatalf("Expected 3 activities, got %d", len(acts))
	}

	wantTypes := []string{"A", "A", "C"}
	for i, a := range acts {
		if a.ProjectType != wantTypes[i] {
			t.Errorf("Row %d: expected type %s, got %s", i, wantTypes[i], a.ProjectType)
		}
		if a.Backlog != "B1" {
			t.Errorf("Row %d: expected backlog B1, got %s", i, a.Backlog)
		}
		if a.Priority != "1" {
			t.Errorf("Row %d: expected priority 1, got %s", i, a.Priority)
		}
		if a.Department != "Riset" {
			t.Errorf("Row %d: expected department Riset, got %s", i, a.Department)
		}
	}
	if acts[0].Status != model.COMPLETE || acts[1].Status != model.IN_PROGRESS || acts[2].Status != model.OUTSTANDING {
		t.Errorf("Unexpected statuses: %s %s %s", acts[0].Status, acts[1].Status, acts[2].Status)
	}
	if acts[2].ProjectKey != "Riset_C_B1" {
		t.Errorf("Expected key Riset_C_B1, got %s", acts[2].ProjectKey)
	}
}

func TestActivitiesEmptyDescriptionStillCarries(t *testing.T) {
	grid := [][]string{
		header,
		{"", "A", "B1", "", "", "", "", ""},
		{"1", "", "", "", "d1", "", "", ""},
		{"", "X", "B2", "", "-", "", "", ""},
		{"2", "", "", "", "d2", "", "", ""},
	}
	acts := Activities("Riset", grid)
	if len(acts) != 2 {
		t.Fatalf("Expected 2 activities, got %d", len(acts))
	}
	if acts[0].ProjectType != "A" || acts[0].Backlog != "B1" {
		t.Errorf("Expected A/B1, got %s/%s", acts[0].ProjectType, acts[0].Backlog)
	}
	if acts[1].ProjectType != "X" || acts[1].Backlog != "B2" {
		t.Errorf("Expected X/B2, got %s/%s", acts[1].ProjectType, acts[1].Backlog)
	}
}

func TestActivitiesDropsRowsWithoutType(t *testing.T) {
	grid := [][]string{
		header,
		{"1", "", "B1", "", "orphan", "", "", ""},
		{"2", "A", "", "", "d1", "", "", ""},
	}
	acts := Activities("Riset", grid)
	if len(acts) != 1 {
		t.Fatalf("Expected 1 activity, got %d", len(acts))
	}
	if acts[0].Description != "d1" {
		t.Errorf("Expected d1, got %s", acts[0].Description)
	}
	// The backlog carried from the dropped row still applies.
	if acts[0].Backlog != "B1" {
		t.Errorf("Expected carried backlog B1, got %s", acts[0].Backlog)
	}
}

func TestActivitiesFieldsAndTotals(t *testing.T) {
	grid := [][]string{
		header,
		{"1", "A", "B1", "2", "Build API", "Dev", "2.5", "Done", "01/02/2024", "05/02/2024", "02/02/2024", ""},
		{"", "", "", "", "Total Mandays", "", "2.5", "", ""},
	}
	acts := Activities("Digitalisasi", grid)
	if len(acts) != 2 {
		t.Fatalf("Expected 2 activities, got %d", len(acts))
	}
	a := acts[0]
	if a.EffortDays != 2.5 {
		t.Errorf("Expected 2.5 effort days, got %v", a.EffortDays)
	}
	if a.PlanStart != "01/02/2024" || a.PlanEnd != "05/02/2024" {
		t.Errorf("Unexpected plan dates %s - %s", a.PlanStart, a.PlanEnd)
	}
	if a.ActualStart != "02/02/2024" || a.ActualEnd != model.Unset {
		t.Errorf("Unexpected actual dates %s - %s", a.ActualStart, a.ActualEnd)
	}
	if a.IsTotals {
		t.Error("Expected regular row not to be a totals row")
	}
	if !acts[1].IsTotals {
		t.Error("Expected totals row to be flagged")
	}
	if acts[1].Sequence != model.Unset {
		t.Errorf("Expected unset sequence, got %q", acts[1].Sequence)
	}
}

func TestActivitiesHeaderOnly(t *testing.T) {
	if acts := Activities("Riset", [][]string{header}); len(acts) != 0 {
		t.Errorf("Expected no activities, got %d", len(acts))
	}
	if acts := Activities("Riset", nil); len(acts) != 0 {
		t.Errorf("Expected no activities, got %d", len(acts))
	}
}

func TestActivitiesPositionalFallback(t *testing.T) {
	grid := [][]string{
		{"#", "Kind", "Group", "P", "What", "Who", "Days", "State"},
		{"1", "A", "B1", "", "d1", "", "1", "complete"},
	}
	acts := Activities("Riset", grid)
	if len(acts) != 1 {
		t.Fatalf("Expected 1 activity, got %d", len(acts))
	}
	if acts[0].ProjectType != "A" || acts[0].Status != model.COMPLETE {
		t.Errorf("Expected positional read, got %+v", acts[0])
	}
}

func TestActivitiesFromRowsIndependentState(t *testing.T) {
	rows := [][]string{{"1", "A", "B1", "", "d1"}}
	_ = ActivitiesFromRows("Riset", columns.Positional, rows)
	acts := ActivitiesFromRows("Digitalisasi", columns.Positional, [][]string{{"1", "", "", "", "d2"}})
	if len(acts) != 0 {
		t.Errorf("Expected carry-forward not to leak across sheets, got %d", len(acts))
	}
}

func TestParseEffort(t *testing.T) {
	tests := map[string]float64{
		"2":      2,
		"2.5":    2.5,
		"3 days": 3,
		" 4 ":    4,
		"":       0,
		"-":      0,
		"abc":    0,
		"-3":     0,
		".5":     0.5,
	}
	for in, want := range tests {
		if got := ParseEffort(in); got != want {
			t.Errorf("ParseEffort(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestTodos(t *testing.T) {
	grid := [][]string{
		{"No", "Type", "Department", "Category", "Item", "PIC", "Start", "End", "Status"},
		{"1", "Task", "Riset", "RKAP", "Draft plan", "Ani", "01/01/2024", "10/01/2024", "Done"},
		{"2", "Task", "Riset", "", "Review", "", "", "", ""},
		{"3", "Task", "Riset", "Ops", "", "Budi", "", "", "Done"},
	}
	tasks := Todos(grid)
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Status != model.COMPLETE || tasks[0].Category != "RKAP" {
		t.Errorf("Unexpected first task: %+v", tasks[0])
	}
	second := tasks[1]
	if second.Category != model.Uncategorized {
		t.Errorf("Expected %s, got %s", model.Uncategorized, second.Category)
	}
	if second.PIC != model.Unassigned {
		t.Errorf("Expected %s, got %s", model.Unassigned, second.PIC)
	}
	if second.EndDate != model.Unset || second.Status != model.OUTSTANDING {
		t.Errorf("Unexpected defaults: %+v", second)
	}
}
