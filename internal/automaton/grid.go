package automaton

// minWidth is the smallest grid that still has an interior cell.
const minWidth = 3

// Grid holds one generation of cell states. The first and last cells are
// boundary cells and stay 0 for the lifetime of the grid.
type Grid struct {
	cur, nxt   []uint8
	generation int
}

// NewGrid allocates a grid of the given width seeded with a single live
// center cell. Widths below 3 are raised to 3.
func NewGrid(width int) *Grid {
	if width < minWidth {
		width = minWidth
	}
	g := &Grid{cur: make([]uint8, width), nxt: make([]uint8, width)}
	g.Reset()
	return g
}

// Reset clears the grid and activates the center cell.
func (g *Grid) Reset() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.cur[len(g.cur)/2] = 1
	g.generation = 0
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cur) }

// Generation returns how many steps have been applied since the last reset.
func (g *Grid) Generation() int { return g.generation }

// Cells exposes the current generation. The slice is replaced by Step, so
// callers must not hold on to it across steps.
func (g *Grid) Cells() []uint8 { return g.cur }

// Step derives the next generation from the current one using rule.
func (g *Grid) Step(rule RuleTable) {
	n := len(g.cur)
	g.nxt[0] = 0
	g.nxt[n-1] = 0
	for i := 1; i < n-1; i++ {
		g.nxt[i] = rule.Lookup(g.cur[i-1], g.cur[i], g.cur[i+1])
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}
