package sprite

import (
	"strconv"
	"strings"

	"spritegen/internal/core"
	sgerrors "spritegen/pkg/errors"
)

// Grid is the cell array of one sprite instance. Grids returned by Resolve
// only hold core.Border, core.Empty and core.Body.
type Grid struct {
	*core.CellGrid
}

// Resolve runs the full pipeline for m. Every phase runs exactly once and in
// order; a nil rnd uses a fresh entropy-seeded source. A nil mask fails with
// INVALID_MASK.
func Resolve(m *Mask, rnd core.Source) (*Grid, error) {
	if m == nil {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "mask is nil")
	}
	rnd = core.OrEntropy(rnd)
	g := newGrid(m)
	g.applyMask(m)
	g.sample(rnd)
	g.mirror(m)
	g.synthesizeEdges()
	return g, nil
}

// newGrid allocates a grid sized for m with every cell solid.
func newGrid(m *Mask) *Grid {
	size := m.GridSize()
	g := &Grid{CellGrid: core.NewCellGrid(size.W, size.H)}
	g.Fill(core.Border)
	return g
}

// applyMask copies the authored codes into the top-left quadrant.
func (g *Grid) applyMask(m *Mask) {
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			g.Set(x, y, core.Cell(m.At(x, y)))
		}
	}
}

// sample resolves every stochastic code with an independent fair draw.
func (g *Grid) sample(rnd core.Source) {
	cells := g.Cells()
	for i, c := range cells {
		switch c {
		case MaskEmptyOrBody:
			if rnd.Float64() < 0.5 {
				cells[i] = core.Body
			} else {
				cells[i] = core.Empty
			}
		case MaskBorderOrBody:
			if rnd.Float64() < 0.5 {
				cells[i] = core.Body
			} else {
				cells[i] = core.Border
			}
		}
	}
}

// mirror reflects X before Y so the bottom-right quadrant copies the already
// mirrored top half.
func (g *Grid) mirror(m *Mask) {
	if m.mirrorX {
		g.mirrorX()
	}
	if m.mirrorY {
		g.mirrorY()
	}
}

// mirrorX overwrites the right half with the reflected left half.
func (g *Grid) mirrorX() {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W/2; x++ {
			g.Set(g.W-1-x, y, g.At(x, y))
		}
	}
}

// mirrorY overwrites the bottom half with the reflected top half.
func (g *Grid) mirrorY() {
	for y := 0; y < g.H/2; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, g.H-1-y, g.At(x, y))
		}
	}
}

// synthesizeEdges turns every empty cell orthogonally adjacent to a body cell
// into a border. Only empty cells change, so scan order does not matter and
// a second pass is a no-op.
func (g *Grid) synthesizeEdges() {
	neighbors := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) <= 0 {
				continue
			}
			for _, d := range neighbors {
				nx, ny := x+d[0], y+d[1]
				if g.InBounds(nx, ny) && g.At(nx, ny) == core.Empty {
					g.Set(nx, ny, core.Border)
				}
			}
		}
	}
}

// String dumps the grid one row per line, each cell as its signed code with
// a leading space for non-negative values.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.W*g.H*2 + g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c >= 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
