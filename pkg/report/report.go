// Package report renders dashboard views as text for the terminal and as
// JSON for other front ends.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/harrisonrobin/sheetdash/pkg/aggregate"
	"github.com/harrisonrobin/sheetdash/pkg/colors"
	"github.com/harrisonrobin/sheetdash/pkg/dashboard"
	"github.com/harrisonrobin/sheetdash/pkg/dates"
	"github.com/harrisonrobin/sheetdash/pkg/model"
	"github.com/harrisonrobin/sheetdash/pkg/workbook"
)

// Chart is the department doughnut dataset.
type Chart struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
	Colors []string `json:"colors"`
	Total  int      `json:"total"`
}

// NewChart builds the chart dataset from a breakdown.
func NewChart(b aggregate.Breakdown, palette *colors.Palette) Chart {
	c := Chart{Total: b.Total}
	for _, s := range b.Slices {
		c.Labels = append(c.Labels, s.Department)
		c.Data = append(c.Data, s.Projects)
	}
	c.Colors = palette.Colors(c.Labels)
	return c
}

// Document is the JSON export.
type Document struct {
	Greeting string          `json:"greeting,omitempty"`
	Chart    Chart           `json:"chart"`
	View     *dashboard.View `json:"view"`
}

// WriteJSON writes the document to path with indentation.
func WriteJSON(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteXLSX stores the listings of v as sheets of a new workbook: Projects
// always, Activities with a drill-down and Tasks with a full to-do listing.
func WriteXLSX(path string, v *dashboard.View) error {
	if v == nil || v.Home == nil {
		return fmt.Errorf("nothing to export")
	}
	projects := v.Projects
	if projects == nil {
		projects = v.Home.TopProjects
	}

	names := []string{"Projects"}
	grids := map[string][][]string{"Projects": projectGrid(projects)}
	if v.Detail != nil {
		names = append(names, "Activities")
		grids["Activities"] = activityGrid(v.Detail.Activities)
	}
	if v.Todos != nil {
		names = append(names, "Tasks")
		grids["Tasks"] = taskGrid(v.Todos.Tasks)
	}
	if err := workbook.Write(path, names, grids); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	return nil
}

func projectGrid(projects []*model.Project) [][]string {
	grid := [][]string{{"Key", "Project Type", "Backlog", "Department", "Activities", "Complete", "In Progress", "Outstanding", "Est. Days", "Status", "Progress"}}
	for _, p := range projects {
		grid = append(grid, []string{
			p.Key, p.ProjectType, p.Backlog, p.Department,
			strconv.Itoa(len(p.Activities)), strconv.Itoa(p.Completed), strconv.Itoa(p.InProgress), strconv.Itoa(p.Outstanding),
			strconv.FormatFloat(p.TotalEffortDays, 'f', -1, 64), string(p.Completion()), strconv.Itoa(p.Percent()) + "%",
		})
	}
	return grid
}

func activityGrid(activities []model.Activity) [][]string {
	grid := [][]string{{"No", "Activity", "Role", "Priority", "Days", "Status", "Plan Start", "Plan End", "Actual Start", "Actual End"}}
	for _, a := range activities {
		grid = append(grid, []string{
			a.Sequence, a.Description, a.Role, model.PriorityLabel(a.Priority),
			strconv.FormatFloat(a.EffortDays, 'f', -1, 64), string(a.Status),
			a.PlanStart, a.PlanEnd, a.ActualStart, a.ActualEnd,
		})
	}
	return grid
}

func taskGrid(tasks []model.TodoTask) [][]string {
	grid := [][]string{{"No", "Type", "Department", "Category", "Item", "PIC", "Start", "End", "Status"}}
	for _, t := range tasks {
		grid = append(grid, []string{t.Sequence, t.Type, t.Department, t.Category, t.Item, t.PIC, t.StartDate, t.EndDate, string(t.Status)})
	}
	return grid
}

// Print writes the text rendering of v. Sections without data are skipped.
func Print(w io.Writer, greeting string, v *dashboard.View, palette *colors.Palette) {
	if greeting != "" {
		fmt.Fprintln(w, greeting)
		fmt.Fprintln(w)
	}
	if v == nil || v.Home == nil {
		fmt.Fprintln(w, "No data available")
		return
	}
	PrintHome(w, v.Home, palette)
	if v.Projects != nil {
		fmt.Fprintln(w)
		PrintProjects(w, "All Projects", v.Projects)
	}
	if v.Detail != nil {
		fmt.Fprintln(w)
		PrintDetail(w, *v.Detail)
	}
	if v.Todos != nil {
		fmt.Fprintln(w)
		PrintTodos(w, "All Tasks", v.Todos)
	}
	if v.Category != nil && len(v.Category.Categories) > 0 {
		fmt.Fprintln(w)
		PrintTodos(w, v.Category.Categories[0], v.Category)
	}
}

func PrintHome(w io.Writer, h *dashboard.Home, palette *colors.Palette) {
	fmt.Fprintln(w, "Summary")
	fmt.Fprintf(w, "- Total projects: %d\n", h.Summary.TotalProjects)
	fmt.Fprintf(w, "- Completed: %d\n", h.Summary.Completed)
	fmt.Fprintf(w, "- In progress: %d\n", h.Summary.InProgress)
	fmt.Fprintf(w, "- Total mandays: %.0f\n", h.Summary.TotalEffortDays)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Projects by department")
	chart := NewChart(h.Breakdown, palette)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  All\t%d\t%s\n", chart.Total, colors.All)
	for i, label := range chart.Labels {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", label, chart.Data[i], chart.Colors[i])
	}
	tw.Flush()

	fmt.Fprintln(w)
	label := h.Department
	if label == "All" {
		label = "All Departments"
	}
	fmt.Fprintf(w, "Project details: %s (complete %d, in progress %d, outstanding %d)\n",
		label, h.DepartmentSummary.Completed, h.DepartmentSummary.InProgress, h.DepartmentSummary.Outstanding)
	if len(h.TopProjects) == 0 {
		fmt.Fprintln(w, "  No projects in this department")
	} else {
		printProjectRows(w, h.TopProjects)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "To-do")
	if len(h.TodoCards) == 0 {
		fmt.Fprintln(w, "  No tasks found with selected filters")
		return
	}
	for _, c := range h.TodoCards {
		mark := " "
		if c.Status == model.COMPLETE {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s (%s)\n", mark, c.Category, c.Department)
		fmt.Fprintf(w, "      %s\n", firstLine(c.Item))
		dateLine := c.DateLabel
		if c.DateRange != "" {
			dateLine += " " + c.DateRange
		}
		more := ""
		if c.More > 0 {
			more = fmt.Sprintf(" +%d more", c.More)
		}
		fmt.Fprintf(w, "      %s | %s%s\n", dateLine, c.PIC, more)
	}
	if h.TodoMore != "" {
		fmt.Fprintf(w, "  %s\n", h.TodoMore)
	}
}

// PrintProjects lists projects with their counts and progress.
func PrintProjects(w io.Writer, title string, projects []*model.Project) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(projects))
	if len(projects) == 0 {
		fmt.Fprintln(w, "  No projects found")
		return
	}
	printProjectRows(w, projects)
}

func printProjectRows(w io.Writer, projects []*model.Project) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  PROJECT\tBACKLOG\tDEPARTMENT\tACTIVITIES\tCOMPLETE\tIN PROGRESS\tEST. DAYS\tPROGRESS\tKEY")
	for _, p := range projects {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d\t%d\t%d\t%.0f\t%d%%\t%s\n",
			p.ProjectType, p.Backlog, p.Department, len(p.Activities), p.Completed, p.InProgress, p.TotalEffortDays, p.Percent(), p.Key)
	}
	tw.Flush()
}

// PrintDetail lists the activities of one project and its totals rows.
func PrintDetail(w io.Writer, d aggregate.Detail) {
	fmt.Fprintf(w, "%s • %s • %s\n", d.ProjectType, d.Backlog, d.Department)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NO\tACTIVITY\tROLE\tPRIORITY\tDAYS\tSTATUS\tPLAN\tACTUAL")
	for _, a := range d.Activities {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%g\t%s\t%s\t%s\n",
			a.Sequence, firstLine(a.Description), a.Role, model.PriorityLabel(a.Priority), a.EffortDays, a.Status,
			dateRange(a.PlanStart, a.PlanEnd), dateRange(a.ActualStart, a.ActualEnd))
	}
	tw.Flush()
	for _, t := range d.Totals {
		fmt.Fprintf(w, "  %s: %g\n", firstLine(t.Description), t.EffortDays)
	}
}

// PrintTodos lists to-do tasks with their status counts.
func PrintTodos(w io.Writer, title string, list *dashboard.TodoList) {
	fmt.Fprintf(w, "%s • %d task(s) | complete %d, in progress %d, outstanding %d\n", title, len(list.Tasks),
		list.Counts[model.COMPLETE], list.Counts[model.IN_PROGRESS], list.Counts[model.OUTSTANDING])
	if len(list.Tasks) == 0 {
		fmt.Fprintln(w, "  No tasks found with the selected filters")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  STATUS\tCATEGORY\tITEM\tDEPARTMENT\tPIC\tSTART\tEND")
	for _, t := range list.Tasks {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n", t.Status, t.Category, firstLine(t.Item), t.Department, t.PIC,
			dates.Display(t.StartDate, dates.FullIndonesian), dates.Display(t.EndDate, dates.FullIndonesian))
	}
	tw.Flush()
}

// PrintDebug writes the diagnostic overview.
func PrintDebug(w io.Writer, d aggregate.Debug) {
	fmt.Fprintln(w, "=== DEBUG INFO ===")
	fmt.Fprintf(w, "Total activities: %d\n", d.Activities)
	fmt.Fprintf(w, "Total todos: %d\n", d.Todos)
	for dept, n := range d.PerDept {
		fmt.Fprintf(w, "  %s: %d activities\n", dept, n)
	}
	fmt.Fprintf(w, "Unique project types: %s\n", strings.Join(d.ProjectTypes, ", "))
	for _, s := range model.Statuses {
		fmt.Fprintf(w, "  %s: %d\n", s, d.Statuses[s])
	}
	fmt.Fprintf(w, "Unique categories: %s\n", strings.Join(d.Categories, ", "))
}

func dateRange(start, end string) string {
	return dates.Display(start, dates.ShortIndonesian) + " - " + dates.Display(end, dates.ShortIndonesian)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	return line
}
