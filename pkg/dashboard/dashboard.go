// Package dashboard owns the loaded collections and the view state, and
// reloads both datasets from their sources as one unit.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harrisonrobin/sheetdash/pkg/config"
	"github.com/harrisonrobin/sheetdash/pkg/extract"
	"github.com/harrisonrobin/sheetdash/pkg/model"
)

var (
	// ErrLoadInFlight is returned when Load is called while another load runs.
	ErrLoadInFlight = errors.New("a load is already in progress")
	// ErrNotLoaded is returned by views before the first successful load.
	ErrNotLoaded = errors.New("dashboard data not loaded")
)

// Source returns the cell grid of sheet!readRange. The Sheets client and the
// local workbook both implement it.
type Source interface {
	Grid(ctx context.Context, sheet, readRange string) ([][]string, error)
}

// Snapshot is one complete load. It is replaced wholesale and never modified.
type Snapshot struct {
	LoadID     string
	LoadedAt   time.Time
	Activities []model.Activity
	Todos      []model.TodoTask
	// PerDepartment is the number of activities read from each department sheet.
	PerDepartment map[string]int
}

type Dashboard struct {
	projects Source
	todos    Source
	cfg      *config.Config

	// OnError is called once for every failed load.
	OnError func(error)
	// Now is the clock used for load timestamps and due-date buckets.
	Now func() time.Time

	mu      sync.RWMutex
	snap    *Snapshot
	loading atomic.Bool
}

// New creates a dashboard reading project sheets from projects and the to-do
// sheet from todos.
func New(projects, todos Source, cfg *config.Config) *Dashboard {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Dashboard{
		projects: projects,
		todos:    todos,
		cfg:      cfg,
		Now:      time.Now,
	}
}

// Load fetches the project sheets and the to-do sheet concurrently and
// installs the result only when both succeed. On failure the previous
// snapshot stays in place and OnError is called once. A second Load while one
// is running returns ErrLoadInFlight.
func (d *Dashboard) Load(ctx context.Context) error {
	if !d.loading.CompareAndSwap(false, true) {
		return ErrLoadInFlight
	}
	defer d.loading.Store(false)

	id := uuid.NewString()
	var (
		activities []model.Activity
		perDept    map[string]int
		todos      []model.TodoTask
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activities, perDept, err = d.loadProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = d.loadTodos(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		err = fmt.Errorf("load %s: %w", id, err)
		log.Printf("Error loading data: %v", err)
		if d.OnError != nil {
			d.OnError(err)
		}
		return err
	}

	snap := &Snapshot{
		LoadID:        id,
		LoadedAt:      d.Now(),
		Activities:    activities,
		Todos:         todos,
		PerDepartment: perDept,
	}
	d.mu.Lock()
	d.snap = snap
	d.mu.Unlock()
	log.Printf("Load %s: %d activities, %d to-do items", id, len(activities), len(todos))
	return nil
}

// loadProjects reads every department sheet concurrently. Rows keep their
// sheet order and departments keep config order.
func (d *Dashboard) loadProjects(ctx context.Context) ([]model.Activity, map[string]int, error) {
	results := make([][]model.Activity, len(d.cfg.Departments))

	g, gctx := errgroup.WithContext(ctx)
	for i, dept := range d.cfg.Departments {
		i, dept := i, dept
		g.Go(func() error {
			grid, err := d.projects.Grid(gctx, dept.Sheet, d.cfg.ProjectsRange)
			if err != nil {
				return fmt.Errorf("department %s: %w", dept.Name, err)
			}
			if len(grid) <= 1 {
				log.Printf("Warning: no data found in %s sheet", dept.Sheet)
				return nil
			}
			results[i] = extract.Activities(dept.Name, grid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var all []model.Activity
	perDept := make(map[string]int, len(results))
	for i, acts := range results {
		perDept[d.cfg.Departments[i].Name] = len(acts)
		all = append(all, acts...)
	}
	return all, perDept, nil
}

func (d *Dashboard) loadTodos(ctx context.Context) ([]model.TodoTask, error) {
	grid, err := d.todos.Grid(ctx, d.cfg.TodoSheet, d.cfg.TodoRange)
	if err != nil {
		return nil, fmt.Errorf("to-do sheet: %w", err)
	}
	return extract.Todos(grid), nil
}

// Snapshot returns the current data or ErrNotLoaded.
func (d *Dashboard) Snapshot() (*Snapshot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.snap == nil {
		return nil, ErrNotLoaded
	}
	return d.snap, nil
}

// Config returns the configuration the dashboard was built with.
func (d *Dashboard) Config() *config.Config {
	return d.cfg
}
