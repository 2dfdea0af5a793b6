package core

// CellGrid stores a 2D grid of cell codes in row-major order.
type CellGrid struct {
	W, H int
	data []Cell
}

// NewCellGrid allocates a grid with the given dimensions.
func NewCellGrid(w, h int) *CellGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CellGrid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *CellGrid) Cells() []Cell { return g.data }

// Size returns the grid dimensions.
func (g *CellGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *CellGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *CellGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the cell at (x, y). Coordinates must be in bounds.
func (g *CellGrid) At(x, y int) Cell { return g.data[y*g.W+x] }

// Set stores c at (x, y). Coordinates must be in bounds.
func (g *CellGrid) Set(x, y int, c Cell) { g.data[y*g.W+x] = c }

// Fill sets every cell to c.
func (g *CellGrid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *CellGrid) Clone() *CellGrid {
	out := &CellGrid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}
