package ui

import (
	"image/color"
	"math"
	"strconv"

	"spritegen/internal/core"
	"spritegen/internal/render"
)

const defaultFloatStep = 0.05

// stepFloat moves value one step in direction, clamped to the control's
// bounds. ok is false when the value cannot move.
func stepFloat(ctrl core.ParameterControl, value float64, direction int) (target float64, ok bool) {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target = value + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	// Snap to the step grid so repeated clicks do not accumulate drift.
	target = math.Round(target/step) * step
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

var (
	borderTint = color.NRGBA{R: 255, G: 64, B: 64, A: 150}
	bodyTint   = color.NRGBA{R: 64, G: 200, B: 255, A: 110}
)

// CellCodeSheet paints each grid's cell codes as translucent tints, scaled
// and laid out exactly like render.Sheet lays out the matching sprites.
// Border cells are red, body cells blue and empty cells stay clear.
func CellCodeSheet(grids []*core.CellGrid, scale, cols, padding int) *render.PixelBuffer {
	if scale < 1 {
		scale = 1
	}
	bufs := make([]*render.PixelBuffer, len(grids))
	for i, g := range grids {
		b := render.NewPixelBuffer(g.W, g.H)
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				switch g.At(x, y) {
				case core.Border:
					b.Set(x, y, borderTint)
				case core.Body:
					b.Set(x, y, bodyTint)
				}
			}
		}
		bufs[i] = render.Resize(b, scale)
	}
	return render.Sheet(bufs, cols, padding)
}
