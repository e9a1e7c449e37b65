package life

// Grid stores cell states indexed [y][x]. All rows share a single row-major
// backing slice, so a Grid can be painted without copying. Grids must be
// allocated with NewGrid or FromCells.
type Grid [][]uint8

// NewGrid allocates an all-dead grid of the given dimensions.
func NewGrid(w, h int) Grid {
	cells := make([]uint8, w*h)
	g := make(Grid, h)
	for y := range g {
		g[y] = cells[:w]
		cells = cells[w:]
	}
	return g
}

// FromCells builds a grid from flattened row-major cell values. Missing cells
// are dead, excess values are ignored and any value other than 1 is dead.
func FromCells(w, h int, cells []int) Grid {
	g := NewGrid(w, h)
	n := min(w*h, len(cells))
	for i := 0; i < n; i++ {
		if cells[i] == 1 {
			g[i/w][i%w] = 1
		}
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Cells exposes the row-major backing slice.
func (g Grid) Cells() []uint8 {
	if len(g) == 0 {
		return nil
	}
	n := g.Width() * g.Height()
	return g[0][:n:n]
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := NewGrid(g.Width(), g.Height())
	copy(c.Cells(), g.Cells())
	return c
}

// Equal reports whether both grids have the same shape and cell states.
func (g Grid) Equal(o Grid) bool {
	if g.Width() != o.Width() || g.Height() != o.Height() {
		return false
	}
	a, b := g.Cells(), o.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.Cells() {
		if c == 1 {
			n++
		}
	}
	return n
}

// CellAt returns the state at (x, y) after toroidal wrapping. Coordinates may
// lie at most one cell outside the grid on each axis; behaviour for larger
// offsets is unspecified.
func CellAt(x, y, w, h int, g Grid) uint8 {
	switch x {
	case -1:
		x = w - 1
	case w:
		x = 0
	}
	switch y {
	case -1:
		y = h - 1
	case h:
		y = 0
	}
	return g[y][x]
}
