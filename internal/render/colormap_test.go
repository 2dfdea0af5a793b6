package render

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"spritegen/internal/core"
)

func testGrid(w, h int, cells ...core.Cell) *core.CellGrid {
	g := core.NewCellGrid(w, h)
	copy(g.Cells(), cells)
	return g
}

func mixedGrid() *core.CellGrid {
	return testGrid(4, 3,
		core.Empty, core.Border, core.Border, core.Empty,
		core.Border, core.Body, core.Body, core.Border,
		core.Empty, core.Border, core.Border, core.Empty,
	)
}

func TestRenderAlphaMatchesEmptyCells(t *testing.T) {
	grid := mixedGrid()
	for seed := uint64(0); seed < 20; seed++ {
		for _, colored := range []bool{true, false} {
			opts := NewOptions(WithColored(colored))
			buf := Render(grid, opts, rand.New(rand.NewPCG(seed, 7)))
			if buf.Width != grid.W || buf.Height != grid.H {
				t.Fatalf("buffer is %dx%d, want %dx%d", buf.Width, buf.Height, grid.W, grid.H)
			}
			if len(buf.Pix) != grid.W*grid.H*4 {
				t.Fatalf("buffer has %d bytes", len(buf.Pix))
			}
			for y := 0; y < grid.H; y++ {
				for x := 0; x < grid.W; x++ {
					alpha := buf.At(x, y).A
					empty := grid.At(x, y) == core.Empty
					if empty && alpha != 0 {
						t.Fatalf("seed %d: empty cell (%d,%d) has alpha %d", seed, x, y, alpha)
					}
					if !empty && alpha != 255 {
						t.Fatalf("seed %d: filled cell (%d,%d) has alpha %d", seed, x, y, alpha)
					}
				}
			}
		}
	}
}

func TestRenderMonochrome(t *testing.T) {
	grid := mixedGrid()
	buf := Render(grid, NewOptions(WithColored(false)), rand.New(rand.NewPCG(3, 3)))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			px := buf.At(x, y)
			switch grid.At(x, y) {
			case core.Body:
				if px.R != 255 || px.G != 255 || px.B != 255 {
					t.Fatalf("body pixel (%d,%d) = %+v, want white", x, y, px)
				}
			case core.Border:
				if px.R != 0 || px.G != 0 || px.B != 0 {
					t.Fatalf("border pixel (%d,%d) = %+v, want black", x, y, px)
				}
			}
		}
	}
}

func TestRenderDeterministicWithSeed(t *testing.T) {
	grid := mixedGrid()
	a := Render(grid, DefaultOptions(), rand.New(rand.NewPCG(11, 0)))
	b := Render(grid, DefaultOptions(), rand.New(rand.NewPCG(11, 0)))
	if !slices.Equal(a.Pix, b.Pix) {
		t.Fatal("same seed should render identical pixels")
	}
}

func TestRenderBordersDarkerThanBody(t *testing.T) {
	// Both grids are fully filled, so the same seed consumes the same draws
	// and every border pixel is its body counterpart scaled by EdgeBrightness.
	bodies := core.NewCellGrid(5, 4)
	bodies.Fill(core.Body)
	borders := core.NewCellGrid(5, 4)
	borders.Fill(core.Border)

	opts := NewOptions(WithEdgeBrightness(0.5))
	for seed := uint64(0); seed < 10; seed++ {
		lit := Render(bodies, opts, rand.New(rand.NewPCG(seed, 1)))
		dim := Render(borders, opts, rand.New(rand.NewPCG(seed, 1)))
		for y := 0; y < bodies.H; y++ {
			for x := 0; x < bodies.W; x++ {
				body, border := lit.At(x, y), dim.At(x, y)
				if sum(border) > sum(body) {
					t.Fatalf("seed %d: border %+v brighter than body %+v", seed, border, body)
				}
				for _, pair := range [][2]uint8{{body.R, border.R}, {body.G, border.G}, {body.B, border.B}} {
					half := float64(pair[0]) / 2
					if d := float64(pair[1]) - half; d > 1 || d < -1 {
						t.Fatalf("seed %d: border channel %d is not half of body channel %d", seed, pair[1], pair[0])
					}
				}
			}
		}
	}
}

func TestRenderZeroEdgeBrightnessBlackensBorders(t *testing.T) {
	grid := mixedGrid()
	buf := Render(grid, NewOptions(WithEdgeBrightness(0)), rand.New(rand.NewPCG(5, 5)))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.At(x, y) != core.Border {
				continue
			}
			if px := buf.At(x, y); px.R != 0 || px.G != 0 || px.B != 0 || px.A != 255 {
				t.Fatalf("border (%d,%d) = %+v, want opaque black", x, y, px)
			}
		}
	}
}

func TestRenderClampsOptions(t *testing.T) {
	grid := mixedGrid()
	wild := Options{Colored: true, EdgeBrightness: 4, ColorVariations: -2, BrightnessNoise: 9, Saturation: 3}
	a := Render(grid, wild, rand.New(rand.NewPCG(9, 9)))
	b := Render(grid, wild.Normalize(), rand.New(rand.NewPCG(9, 9)))
	if !slices.Equal(a.Pix, b.Pix) {
		t.Fatal("out-of-range options should render exactly like their clamped form")
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestHueJumpRange(t *testing.T) {
	if got := hueJump(constSource(0.5)); got != 0 {
		t.Fatalf("hueJump at midpoint = %f, want 0", got)
	}
	if got := hueJump(constSource(0)); got != 1 {
		t.Fatalf("hueJump at extreme = %f, want 1", got)
	}
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		if v := hueJump(rnd); v < 0 || v > 1 {
			t.Fatalf("hueJump out of range: %f", v)
		}
	}
}

func sum(c interface{ RGBA() (r, g, b, a uint32) }) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}

// script replays a fixed sequence of draws and fails on over- or under-use.
type script struct {
	t    *testing.T
	vals []float64
	next int
}

func (s *script) Float64() float64 {
	if s.next >= len(s.vals) {
		s.t.Fatalf("render drew more than the %d scripted values", len(s.vals))
	}
	v := s.vals[s.next]
	s.next++
	return v
}

func (s *script) done() {
	if s.next != len(s.vals) {
		s.t.Fatalf("render drew %d of %d scripted values", s.next, len(s.vals))
	}
}

var (
	stay     = []float64{0.5, 0.5, 0.5}    // jump draw 0
	nearJump = []float64{0.7, 0.7, 0.7}    // jump draw 0.4, just under the threshold
	jump     = []float64{0.95, 0.95, 0.95} // jump draw 0.9
)

// lane is one gradient step: the jump draw, an optional new hue, and one
// brightness draw per pixel across the step.
func lane(draws []float64, pixels int, hue ...float64) []float64 {
	out := append(append([]float64{}, draws...), hue...)
	for i := 0; i < pixels; i++ {
		out = append(out, 0.3)
	}
	return out
}

func envelope(u, n int) float64 { return math.Sin(float64(u) / float64(n) * math.Pi) }

func shade(hue, sat, light float64) [3]uint8 {
	r, g, b := hslToRGB(hue, sat, light)
	return [3]uint8{channel(r), channel(g), channel(b)}
}

func TestRenderGradientHorizontal(t *testing.T) {
	grid := core.NewCellGrid(4, 2)
	grid.Fill(core.Body)
	opts := NewOptions(WithSaturation(1), WithColorVariations(0.5), WithBrightnessNoise(0))

	vals := []float64{0.2, 0.5, 0.1} // columns, saturation 0.5, hue 0.1
	vals = append(vals, lane(stay, 2)...)
	vals = append(vals, lane(nearJump, 2)...)
	vals = append(vals, lane(jump, 2, 0.6)...)
	vals = append(vals, lane(stay, 2)...)
	src := &script{t: t, vals: vals}
	buf := Render(grid, opts, src)
	src.done()

	want := [][3]uint8{
		shade(0.1, 0.5, envelope(0, 4)),
		shade(0.1, 0.5, envelope(1, 4)),
		shade(0.6, 0.5, envelope(2, 4)),
		shade(0.6, 0.5, envelope(3, 4)),
	}
	if want[1] != [3]uint8{180, 144, 90} {
		t.Fatalf("hue 0.1 at sin(pi/4) = %v, want [180 144 90]", want[1])
	}
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			px := buf.At(x, y)
			if got := [3]uint8{px.R, px.G, px.B}; got != want[x] || px.A != 255 {
				t.Fatalf("(%d,%d) = %+v, want %v", x, y, px, want[x])
			}
		}
	}
}

func TestRenderGradientVertical(t *testing.T) {
	grid := core.NewCellGrid(4, 3)
	grid.Fill(core.Body)
	opts := NewOptions(WithSaturation(0.5), WithColorVariations(0.5), WithBrightnessNoise(0))

	vals := []float64{0.8, 0.8, 0.9} // rows, saturation 0.4, hue 0.9
	vals = append(vals, lane(stay, 4)...)
	vals = append(vals, lane(jump, 4, 0.3)...)
	vals = append(vals, lane(nearJump, 4)...)
	src := &script{t: t, vals: vals}
	buf := Render(grid, opts, src)
	src.done()

	want := [][3]uint8{
		shade(0.9, 0.4, envelope(0, 3)),
		shade(0.3, 0.4, envelope(1, 3)),
		shade(0.3, 0.4, envelope(2, 3)),
	}
	if want[0] != [3]uint8{0, 0, 0} {
		t.Fatalf("zero lightness should be black, got %v", want[0])
	}
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			px := buf.At(x, y)
			if got := [3]uint8{px.R, px.G, px.B}; got != want[y] {
				t.Fatalf("(%d,%d) = %+v, want %v", x, y, px, want[y])
			}
		}
	}
	if a, b := buf.At(0, 1), buf.At(0, 2); a != b {
		t.Fatalf("hue should hold across rows without a jump: %+v vs %+v", a, b)
	}
}
