package render

import "math"

// hslToRGB converts hue h in [0,1), saturation s and lightness l to RGB
// channels in [0,1]. The six-sextant mapping is the one sprite palettes have
// always used; changing it recolors every sprite.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := l * (1 - s)
	q := l * (1 - f*s)
	t := l * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return l, t, p
	case 1:
		return q, l, p
	case 2:
		return p, l, t
	case 3:
		return p, q, l
	case 4:
		return t, p, l
	default:
		return l, p, q
	}
}
