// Package columns maps the header row of a department project sheet to the
// column indices of the fields the extractor needs.
package columns

import "strings"

// Field is a semantic column of a project sheet.
type Field int

const (
	Sequence Field = iota
	ProjectType
	Backlog
	Priority
	Description
	Role
	Effort
	Status
	PlanStart
	ActualStart
	fieldCount
)

var fieldNames = [fieldCount]string{
	"sequence", "project-type", "backlog", "priority", "description",
	"role", "effort", "status", "plan-start", "actual-start",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields lists every semantic field in layout order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// Map holds one column index per field; -1 means the field is absent.
type Map [fieldCount]int

// Positional is the fixed layout used when header matching fails.
// Plan and actual end dates sit right of their start columns (8/9, 10/11).
var Positional = Map{
	Sequence:    0,
	ProjectType: 1,
	Backlog:     2,
	Priority:    3,
	Description: 4,
	Role:        5,
	Effort:      6,
	Status:      7,
	PlanStart:   8,
	ActualStart: 10,
}

// Index returns the column for f, or -1.
func (m Map) Index(f Field) int {
	return m[f]
}

// Cell returns the trimmed text of row at field f, or "" when the row is short
// or the field is absent.
func (m Map) Cell(row []string, f Field) string {
	return Cell(row, m[f])
}

// CellRight returns the cell immediately right of field f. End dates are read
// this way from the plan and actual start columns.
func (m Map) CellRight(row []string, f Field) string {
	if m[f] < 0 {
		return ""
	}
	return Cell(row, m[f]+1)
}

// Cell returns the trimmed text at idx, or "" when out of range.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

type matcher func(h string) bool

func has(parts ...string) matcher {
	return func(h string) bool {
		for _, p := range parts {
			if !strings.Contains(h, p) {
				return false
			}
		}
		return true
	}
}

func is(s string) matcher {
	return func(h string) bool { return h == s }
}

func without(m matcher, excluded ...string) matcher {
	return func(h string) bool {
		for _, e := range excluded {
			if strings.Contains(h, e) {
				return false
			}
		}
		return m(h)
	}
}

// rules is evaluated per field; the first header matching any of the field's
// matchers wins.
var rules = [fieldCount][]matcher{
	Sequence:    {without(has("no"), "note")},
	ProjectType: {has("project", "type"), is("project type"), is("project")},
	Backlog:     {has("proker"), has("backlog")},
	Priority:    {has("priority")},
	Description: {has("aktivitas"), has("activity")},
	Role:        {has("role")},
	Effort:      {has("mandays"), has("man days"), has("est", "day")},
	Status:      {without(has("status"), "plan", "actual"), is("status")},
	PlanStart:   {is("plan"), without(has("plan"), "start", "end")},
	ActualStart: {is("actual"), without(has("actual"), "start", "end")},
}

// required are the fields without which heuristic matching is abandoned.
var required = []Field{ProjectType, Status}

// Resolve inspects a header row. When a required field cannot be matched the
// whole heuristic result is discarded and Positional is returned with
// positional=true; partial matches are never mixed with the fixed layout.
func Resolve(header []string) (m Map, positional bool) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for f := Field(0); f < fieldCount; f++ {
		m[f] = find(normalized, rules[f])
	}
	for _, f := range required {
		if m[f] == -1 {
			return Positional, true
		}
	}
	return m, false
}

func find(headers []string, matchers []matcher) int {
	for i, h := range headers {
		for _, match := range matchers {
			if match(h) {
				return i
			}
		}
	}
	return -1
}
