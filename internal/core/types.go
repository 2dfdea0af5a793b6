package core

// Size describes the dimensions of a cell grid or pixel buffer.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Cell is a resolved grid code.
type Cell int8

const (
	// Border cells render as the darkened outline color.
	Border Cell = -1
	// Empty cells render fully transparent.
	Empty Cell = 0
	// Body cells render with the sprite's gradient color.
	Body Cell = 1
)
