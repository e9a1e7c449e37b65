package life

import (
	"term-life/pkg/core"
)

// NeighborCount returns the number of live cells in the Moore neighbourhood
// of (x, y) with wrap-around edges. Positions are compared before wrapping,
// so on a 1-wide or 1-high grid a cell can be counted as its own neighbour.
func NeighborCount(x, y, w, h int, g Grid) int {
	count := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if CellAt(nx, ny, w, h, g) == 1 {
				count++
			}
		}
	}
	return count
}

// Rule returns the next state of a cell given its current state and live
// neighbour count.
func Rule(state uint8, neighbors int) uint8 {
	if state == 1 {
		switch {
		case neighbors < 2:
			return 0
		case neighbors == 2 || neighbors == 3:
			return 1
		case neighbors > 3:
			return 0
		}
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}

// NextGeneration computes the following generation into a freshly allocated
// grid. The input grid is never written.
func NextGeneration(w, h int, g Grid) Grid {
	next := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next[y][x] = Rule(g[y][x], NeighborCount(x, y, w, h, g))
		}
	}
	return next
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	name    string
	w, h    int
	initial Grid
	cur     Grid
	gen     int
}

// New returns a Life simulation seeded with a copy of the provided grid.
func New(name string, g Grid) *Life {
	return &Life{
		name:    name,
		w:       g.Width(),
		h:       g.Height(),
		initial: g.Clone(),
		cur:     g.Clone(),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values in row-major order.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() Grid { return l.cur }

// Generation reports how many steps have run since the last restore or reset.
func (l *Life) Generation() int { return l.gen }

// Reset replaces the board with a noise soup derived from seed.
func (l *Life) Reset(seed int64) {
	g := NewGrid(l.w, l.h)
	core.NewNoise(seed).FillBinary(g.Cells(), l.w, l.h, core.DefaultDensity)
	l.cur = g
	l.gen = 0
}

// Restore reinstates the pattern the simulation was created with.
func (l *Life) Restore() {
	l.cur = l.initial.Clone()
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur = NextGeneration(l.w, l.h, l.cur)
	l.gen++
}
