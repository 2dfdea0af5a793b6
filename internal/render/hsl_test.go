package render

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestHSLToRGBSextants(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b float64
	}{
		{"red", 0, 1, 1, 1, 0, 0},
		{"yellow", 1.0 / 6, 1, 1, 1, 1, 0},
		{"green", 2.0 / 6, 1, 1, 0, 1, 0},
		{"cyan", 3.0 / 6, 1, 1, 0, 1, 1},
		{"blue", 4.0 / 6, 1, 1, 0, 0, 1},
		{"magenta", 5.0 / 6, 1, 1, 1, 0, 1},
		{"grey", 0.3, 0, 0.5, 0.5, 0.5, 0.5},
		{"black", 0.7, 0.8, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hslToRGB(tt.h, tt.s, tt.l)
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) {
				t.Fatalf("hslToRGB(%v,%v,%v) = (%v,%v,%v), want (%v,%v,%v)",
					tt.h, tt.s, tt.l, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSLToRGBMatchesReferenceHSV(t *testing.T) {
	for hi := 0; hi < 97; hi++ {
		h := float64(hi) / 97
		for _, s := range []float64{0, 0.25, 0.5, 1} {
			for _, l := range []float64{0.1, 0.6, 1} {
				r, g, b := hslToRGB(h, s, l)
				ref := colorful.Hsv(h*360, s, l)
				if !near(r, ref.R) || !near(g, ref.G) || !near(b, ref.B) {
					t.Fatalf("h=%v s=%v l=%v: got (%v,%v,%v), reference (%v,%v,%v)",
						h, s, l, r, g, b, ref.R, ref.G, ref.B)
				}
			}
		}
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
