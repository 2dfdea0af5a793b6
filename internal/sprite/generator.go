package sprite

import (
	"spritegen/internal/core"
	"spritegen/internal/render"
)

// Result is the output of one generation: the pixels consumers display and
// the resolved grid for debugging.
type Result struct {
	Buffer *render.PixelBuffer
	Grid   *Grid
}

// Generator renders sprites with a fixed set of options. It is safe for
// concurrent use as long as each goroutine supplies its own random source.
type Generator struct {
	opts render.Options
}

// NewGenerator returns a Generator using opts clamped to [0,1].
func NewGenerator(opts render.Options) *Generator {
	return &Generator{opts: opts.Normalize()}
}

// Options returns the effective (clamped) options.
func (g *Generator) Options() render.Options { return g.opts }

// Generate resolves m into a grid and colors it. rnd feeds every random draw
// of both stages; nil uses a fresh entropy-seeded source.
func (g *Generator) Generate(m *Mask, rnd core.Source) (*Result, error) {
	rnd = core.OrEntropy(rnd)
	grid, err := Resolve(m, rnd)
	if err != nil {
		return nil, err
	}
	return &Result{
		Buffer: render.Render(grid.CellGrid, g.opts, rnd),
		Grid:   grid,
	}, nil
}

// Generate is a one-shot helper merging opts over the default render options.
func Generate(m *Mask, rnd core.Source, opts ...render.Option) (*Result, error) {
	return NewGenerator(render.NewOptions(opts...)).Generate(m, rnd)
}
