package dashboard

import (
	"fmt"
	"time"

	"github.com/harrisonrobin/sheetdash/pkg/aggregate"
	"github.com/harrisonrobin/sheetdash/pkg/category"
	"github.com/harrisonrobin/sheetdash/pkg/filter"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// Home is the landing view.
type Home struct {
	Summary           aggregate.Summary   `json:"summary"`
	Department        string              `json:"department"`
	DepartmentSummary aggregate.Summary   `json:"department_summary"`
	Breakdown         aggregate.Breakdown `json:"breakdown"`
	TopProjects       []*model.Project    `json:"top_projects"`
	TodoCards         []category.Card     `json:"todo_cards"`
	TodoMore          string              `json:"todo_more,omitempty"`
}

// Home builds the landing view for department ("All" for every department)
// and the to-do preview filter.
func (d *Dashboard) Home(department string, todo filter.Todo) (*Home, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}

	all := aggregate.Projects(snap.Activities)
	scoped := aggregate.Projects(filter.Activities(snap.Activities, department))
	if filter.IsAll(department) {
		department = "All"
	}

	h := &Home{
		Summary:           aggregate.Summarize(all),
		Department:        department,
		DepartmentSummary: aggregate.Summarize(scoped),
		Breakdown:         aggregate.DepartmentBreakdown(all, d.cfg.DepartmentNames()),
		TopProjects:       aggregate.Top(scoped, d.cfg.TopProjects),
	}

	preview := category.NewPreview(category.GroupTasks(filter.Todos(snap.Todos, d.todoFilter(todo))), d.cfg.PreviewCategories)
	for _, g := range preview.Groups {
		h.TodoCards = append(h.TodoCards, category.NewCard(g))
	}
	h.TodoMore = preview.More()
	return h, nil
}

// Projects lists every project of department whose completion matches
// status. The list is never capped.
func (d *Dashboard) Projects(department, status string) ([]*model.Project, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	projects := aggregate.Projects(filter.Activities(snap.Activities, department))
	return filter.Projects(projects, status), nil
}

// ProjectDetail is the drill-down for one project key, totals rows included.
func (d *Dashboard) ProjectDetail(key string) (aggregate.Detail, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return aggregate.Detail{}, err
	}
	detail, ok := aggregate.ProjectDetail(snap.Activities, key)
	if !ok {
		return aggregate.Detail{}, fmt.Errorf("no activities found for project %q", key)
	}
	return detail, nil
}

// TodoList is a filtered to-do listing with its status counts.
type TodoList struct {
	Tasks  []model.TodoTask     `json:"tasks"`
	Counts map[model.Status]int `json:"counts"`
	// Categories offered as filter chips: every category of the
	// department-filtered tasks, in grouping order.
	Categories []string `json:"categories"`
}

// Todos is the full to-do listing. Counts follow the displayed tasks; the
// category chips follow the department filter only.
func (d *Dashboard) Todos(f filter.Todo) (*TodoList, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	f = d.todoFilter(f)
	tasks := filter.Todos(snap.Todos, f)
	base := filter.Todos(snap.Todos, filter.Todo{Department: f.Department, Today: f.Today})
	return &TodoList{
		Tasks:      tasks,
		Counts:     filter.CountByStatus(tasks),
		Categories: category.Categories(base),
	}, nil
}

// Category lists one category under the department and status filters.
func (d *Dashboard) Category(name, department, status string) (*TodoList, error) {
	list, err := d.Todos(filter.Todo{Department: department, Status: status, Category: name})
	if err != nil {
		return nil, err
	}
	list.Categories = []string{name}
	return list, nil
}

// Debug summarises the loaded data.
func (d *Dashboard) Debug() (aggregate.Debug, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return aggregate.Debug{}, err
	}
	return aggregate.DebugInfo(snap.Activities, snap.Todos), nil
}

// State is the view state of one dashboard session: the active department of
// the project panel and the independent filters of each listing.
type State struct {
	Department    string
	ProjectStatus string
	Project       string
	TodoPreview   filter.Todo
	TodoModal     filter.Todo
	Category      string
	Full          bool
}

// View is everything the presentation layer renders for a State.
type View struct {
	LoadID   string            `json:"load_id"`
	LoadedAt time.Time         `json:"loaded_at"`
	Home     *Home             `json:"home"`
	Projects []*model.Project  `json:"projects,omitempty"`
	Detail   *aggregate.Detail `json:"detail,omitempty"`
	Todos    *TodoList         `json:"todos,omitempty"`
	Category *TodoList         `json:"category,omitempty"`
}

// Build computes the views selected by st.
func (d *Dashboard) Build(st State) (*View, error) {
	snap, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	v := &View{LoadID: snap.LoadID, LoadedAt: snap.LoadedAt}

	if v.Home, err = d.Home(st.Department, st.TodoPreview); err != nil {
		return nil, err
	}
	if st.Full || !filter.IsAll(st.ProjectStatus) {
		if v.Projects, err = d.Projects(st.Department, st.ProjectStatus); err != nil {
			return nil, err
		}
	}
	if st.Project != "" {
		detail, err := d.ProjectDetail(st.Project)
		if err != nil {
			return nil, err
		}
		v.Detail = &detail
	}
	if st.Full {
		if v.Todos, err = d.Todos(st.TodoModal); err != nil {
			return nil, err
		}
	}
	if st.Category != "" {
		if v.Category, err = d.Category(st.Category, st.TodoModal.Department, st.TodoModal.Status); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (d *Dashboard) todoFilter(f filter.Todo) filter.Todo {
	if f.Today.IsZero() {
		f.Today = d.Now()
	}
	return f
}
