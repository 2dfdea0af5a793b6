package render

import (
	"math"

	"spritegen/internal/core"
)

// Render colors a resolved grid into a new pixel buffer.
//
// Hue and brightness vary along a gradient axis picked at random (rows or
// columns). Empty cells are fully transparent; body and border cells are
// opaque, borders darkened by EdgeBrightness. Options are clamped to [0,1]
// first. A nil rnd uses a fresh entropy-seeded source.
func Render(grid *core.CellGrid, opts Options, rnd core.Source) *PixelBuffer {
	rnd = core.OrEntropy(rnd)
	opts = opts.Normalize()

	w, h := grid.W, grid.H
	out := NewPixelBuffer(w, h)

	vertical := rnd.Float64() > 0.5
	saturation := clamp01(rnd.Float64() * opts.Saturation)
	hue := rnd.Float64()

	ulen, vlen := w, h
	if vertical {
		ulen, vlen = h, w
	}

	for u := 0; u < ulen; u++ {
		if hueJump(rnd) > 1-opts.ColorVariations {
			hue = rnd.Float64()
		}
		envelope := math.Sin(float64(u) / float64(ulen) * math.Pi)

		for v := 0; v < vlen; v++ {
			x, y := u, v
			if vertical {
				x, y = v, u
			}
			cell := grid.At(x, y)
			base := out.Offset(x, y)

			if cell == core.Empty {
				writeRGBA(out.Pix, base, 1, 1, 1, 0)
				continue
			}
			if !opts.Colored {
				if cell == core.Border {
					writeRGBA(out.Pix, base, 0, 0, 0, 1)
				} else {
					writeRGBA(out.Pix, base, 1, 1, 1, 1)
				}
				continue
			}

			brightness := envelope*(1-opts.BrightnessNoise) + rnd.Float64()*opts.BrightnessNoise
			r, g, b := hslToRGB(hue, saturation, brightness)
			if cell == core.Border {
				r *= opts.EdgeBrightness
				g *= opts.EdgeBrightness
				b *= opts.EdgeBrightness
			}
			writeRGBA(out.Pix, base, r, g, b, 1)
		}
	}
	return out
}

// hueJump draws a value in [0,1] biased toward 0: the absolute value of the
// mean of three uniform samples on [-1,1].
func hueJump(rnd core.Source) float64 {
	a := rnd.Float64()*2 - 1
	b := rnd.Float64()*2 - 1
	c := rnd.Float64()*2 - 1
	return math.Abs((a + b + c) / 3)
}
