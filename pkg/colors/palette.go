package colors

import "sync"

// All is the colour of the all-departments view.
const All = "#f97316"

var known = map[string]string{
	"Riset":              "#8b5cf6",
	"Digitalisasi":       "#3b82f6",
	"System Development": "#10b981",
}

var spare = []string{"#ef4444", "#eab308", "#06b6d4", "#ec4899", "#84cc16", "#6366f1", "#14b8a6", "#f43f5e"}

// Palette hands out chart colours per department. Known departments keep
// their fixed colour; others take spare colours in first-request order and
// wrap around once the spares run out.
type Palette struct {
	mu       sync.Mutex
	assigned map[string]string
	next     int
}

func NewPalette() *Palette {
	return &Palette{assigned: make(map[string]string)}
}

// Color returns the colour for department.
func (p *Palette) Color(department string) string {
	if department == "" || department == "All" {
		return All
	}
	if c, ok := known[department]; ok {
		return c
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.assigned[department]; ok {
		return c
	}
	c := spare[p.next%len(spare)]
	p.next++
	p.assigned[department] = c
	return c
}

// Colors maps departments to colours in order.
func (p *Palette) Colors(departments []string) []string {
	out := make([]string, len(departments))
	for i, d := range departments {
		out[i] = p.Color(d)
	}
	return out
}
