package render

import "math"

// writeRGBA stores float channels in [0,1] at byte offset base of buf.
func writeRGBA(buf []byte, base int, r, g, b, a float64) {
	buf[base+0] = channel(r)
	buf[base+1] = channel(g)
	buf[base+2] = channel(b)
	buf[base+3] = channel(a)
}

// channel scales a [0,1] value to a byte, clamping and rounding half to even.
func channel(v float64) uint8 {
	v *= 255
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
