// Package sprite turns hand-authored masks into finished sprite grids and
// pixel buffers.
//
// A Mask describes one quadrant of a sprite. Resolve expands it into a Grid
// through a fixed pipeline (solid fill, apply mask, stochastic sample,
// mirror, edge synthesis) and Generate colors the result.
package sprite

import (
	"math"

	"spritegen/internal/core"
	sgerrors "spritegen/pkg/errors"
)

// Mask cell codes.
const (
	// MaskBorder is always an outline cell.
	MaskBorder = -1
	// MaskEmpty is always transparent.
	MaskEmpty = 0
	// MaskEmptyOrBody resolves to body or empty with equal probability.
	MaskEmptyOrBody = 1
	// MaskBorderOrBody resolves to body or border with equal probability.
	MaskBorderOrBody = 2
)

// Mask is an immutable sprite template.
type Mask struct {
	w, h    int
	cells   []int8
	mirrorX bool
	mirrorY bool
}

// MaskOption configures optional Mask properties.
type MaskOption func(*Mask)

// WithMirrorX controls horizontal mirroring (default true).
func WithMirrorX(v bool) MaskOption { return func(m *Mask) { m.mirrorX = v } }

// WithMirrorY controls vertical mirroring (default true).
func WithMirrorY(v bool) MaskOption { return func(m *Mask) { m.mirrorY = v } }

// NewMask validates and copies cells into a new Mask. It fails with
// INVALID_MASK when the dimensions are not positive, len(cells) != w*h, or
// any cell is outside {-1, 0, 1, 2}.
func NewMask(cells []int, w, h int, opts ...MaskOption) (*Mask, error) {
	if w <= 0 || h <= 0 {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "dimensions must be positive, got %dx%d", w, h)
	}
	// Compare by division so a w*h that overflows int cannot match.
	n := len(cells)
	if n%w != 0 || n/w != h {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "mask %dx%d does not match %d cells", w, h, n)
	}
	if w > math.MaxInt/2 || h > math.MaxInt/2 {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "mask %dx%d is too large to mirror", w, h)
	}
	m := &Mask{w: w, h: h, cells: make([]int8, len(cells)), mirrorX: true, mirrorY: true}
	for i, c := range cells {
		if c < MaskBorder || c > MaskBorderOrBody {
			return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "cell %d (x=%d, y=%d) has code %d, want -1..2", i, i%w, i/w, c)
		}
		m.cells[i] = int8(c)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustMask is NewMask for package-level templates; it panics on invalid input.
func MustMask(cells []int, w, h int, opts ...MaskOption) *Mask {
	m, err := NewMask(cells, w, h, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the authored quadrant width.
func (m *Mask) Width() int { return m.w }

// Height returns the authored quadrant height.
func (m *Mask) Height() int { return m.h }

// MirrorX reports whether the left half is reflected onto the right.
func (m *Mask) MirrorX() bool { return m.mirrorX }

// MirrorY reports whether the top half is reflected onto the bottom.
func (m *Mask) MirrorY() bool { return m.mirrorY }

// At returns the code at (x, y) of the authored quadrant.
func (m *Mask) At(x, y int) int { return int(m.cells[y*m.w+x]) }

// Cells returns a copy of the codes in row-major order.
func (m *Mask) Cells() []int {
	out := make([]int, len(m.cells))
	for i, c := range m.cells {
		out[i] = int(c)
	}
	return out
}

// GridSize returns the dimensions of grids resolved from this mask.
func (m *Mask) GridSize() core.Size {
	s := core.Size{W: m.w, H: m.h}
	if m.mirrorX {
		s.W *= 2
	}
	if m.mirrorY {
		s.H *= 2
	}
	return s
}

// Stochastic reports whether any cell needs a random draw.
func (m *Mask) Stochastic() bool {
	for _, c := range m.cells {
		if c == MaskEmptyOrBody || c == MaskBorderOrBody {
			return true
		}
	}
	return false
}
