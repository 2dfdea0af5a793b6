package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestANSIHalfBlocks(t *testing.T) {
	b := NewPixelBuffer(3, 3)
	on := color.NRGBA{R: 200, G: 10, B: 10, A: 255}
	b.Set(0, 0, on) // top only
	b.Set(1, 1, on) // bottom only
	b.Set(2, 0, on) // both
	b.Set(2, 1, on)
	b.Set(0, 2, on) // last odd row, top only

	// A renderer on a plain buffer has no color profile, leaving just glyphs.
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	out := ANSI(b, r)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for 3 pixel rows, got %d: %q", len(lines), out)
	}
	if lines[0] != "▀▄▀" {
		t.Fatalf("first line = %q", lines[0])
	}
	if lines[1] != "▀  " {
		t.Fatalf("second line = %q", lines[1])
	}
}
