package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// ANSI renders the buffer as terminal text using half-block glyphs, two
// pixel rows per line. Transparent pixels (alpha below 128) are left blank.
// The renderer decides the color profile; a renderer without color support
// still yields the block layout.
func ANSI(b *PixelBuffer, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	var sb strings.Builder
	for y := 0; y < b.Height; y += 2 {
		for x := 0; x < b.Width; x++ {
			top := b.At(x, y)
			bottom := color.NRGBA{}
			if y+1 < b.Height {
				bottom = b.At(x, y+1)
			}
			sb.WriteString(halfBlock(r, top, bottom))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func halfBlock(r *lipgloss.Renderer, top, bottom color.NRGBA) string {
	topOn, bottomOn := top.A >= 128, bottom.A >= 128
	switch {
	case topOn && bottomOn:
		return r.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render(upperHalf)
	case topOn:
		return r.NewStyle().Foreground(hex(top)).Render(upperHalf)
	case bottomOn:
		return r.NewStyle().Foreground(hex(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
