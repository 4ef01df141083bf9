// Package extract turns raw sheet grids into activity and to-do records.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/harrisonrobin/sheetdash/pkg/columns"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// Activities extracts one department sheet. The first row of grid is the
// header. Row order matters: project type, backlog and priority carry forward
// from the last row that set them.
func Activities(department string, grid [][]string) []model.Activity {
	if len(grid) <= 1 {
		return nil
	}
	m, _ := columns.Resolve(grid[0])
	return ActivitiesFromRows(department, m, grid[1:])
}

// ActivitiesFromRows extracts data rows with an already resolved column map.
func ActivitiesFromRows(department string, m columns.Map, rows [][]string) []model.Activity {
	var (
		currentType     string
		currentBacklog  string
		currentPriority string
		out             []model.Activity
	)

	for _, row := range rows {
		if v := m.Cell(row, columns.ProjectType); !model.IsBlank(v) {
			currentType = v
		}
		if v := m.Cell(row, columns.Backlog); !model.IsBlank(v) {
			currentBacklog = v
		}
		if v := m.Cell(row, columns.Priority); !model.IsBlank(v) {
			currentPriority = v
		}

		desc := m.Cell(row, columns.Description)
		if model.IsBlank(desc) {
			continue
		}
		// Nothing to group under yet.
		if model.IsBlank(currentType) {
			continue
		}

		a := model.Activity{
			Sequence:    model.OrUnset(m.Cell(row, columns.Sequence)),
			ProjectType: currentType,
			Backlog:     model.OrUnset(currentBacklog),
			Priority:    model.OrUnset(currentPriority),
			Description: desc,
			Role:        model.OrUnset(m.Cell(row, columns.Role)),
			EffortDays:  ParseEffort(m.Cell(row, columns.Effort)),
			Status:      model.NormalizeStatus(m.Cell(row, columns.Status)),
			PlanStart:   model.OrUnset(m.Cell(row, columns.PlanStart)),
			PlanEnd:     model.OrUnset(m.CellRight(row, columns.PlanStart)),
			ActualStart: model.OrUnset(m.Cell(row, columns.ActualStart)),
			ActualEnd:   model.OrUnset(m.CellRight(row, columns.ActualStart)),
			Department:  department,
			IsTotals:    strings.Contains(strings.ToLower(desc), model.TotalsMarker),
		}
		a.ProjectKey = model.ProjectKey(department, a.ProjectType, a.Backlog)
		out = append(out, a)
	}
	return out
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseEffort reads the leading number of an effort cell ("2.5", "3 days").
// Anything unparsable, negative or non-finite is 0.
func ParseEffort(s string) float64 {
	num := leadingNumber.FindString(strings.TrimSpace(s))
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// To-do sheet layout (A:I).
const (
	todoSequence = iota
	todoType
	todoDepartment
	todoCategory
	todoItem
	todoPIC
	todoStart
	todoEnd
	todoStatus
)

// Todos extracts the to-do sheet. The first row of grid is the header and the
// columns are positional. Rows without item text are dropped.
func Todos(grid [][]string) []model.TodoTask {
	if len(grid) <= 1 {
		return nil
	}
	var out []model.TodoTask
	for _, row := range grid[1:] {
		item := columns.Cell(row, todoItem)
		if model.IsBlank(item) {
			continue
		}
		category := columns.Cell(row, todoCategory)
		if model.IsBlank(category) {
			category = model.Uncategorized
		}
		pic := columns.Cell(row, todoPIC)
		if model.IsBlank(pic) {
			pic = model.Unassigned
		}
		out = append(out, model.TodoTask{
			Sequence:   model.OrUnset(columns.Cell(row, todoSequence)),
			Type:       model.OrUnset(columns.Cell(row, todoType)),
			Department: model.OrUnset(columns.Cell(row, todoDepartment)),
			Category:   category,
			Item:       item,
			PIC:        pic,
			StartDate:  model.OrUnset(columns.Cell(row, todoStart)),
			EndDate:    model.OrUnset(columns.Cell(row, todoEnd)),
			Status:     model.NormalizeStatus(columns.Cell(row, todoStatus)),
		})
	}
	return out
}
