//go:build ebiten

package ui

import (
	"spritegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints resolved cell codes on top of the sprite sheet. G toggles it.
type Overlay struct {
	visible bool
	img     *ebiten.Image
	buf     []byte
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.visible = !o.visible
	}
}

// SetGrids rebuilds the tint image for a new sheet.
func (o *Overlay) SetGrids(grids []*core.CellGrid, scale, cols, padding int) {
	sheet := CellCodeSheet(grids, scale, cols, padding)
	if sheet.Width == 0 || sheet.Height == 0 {
		o.img = nil
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != sheet.Width || o.img.Bounds().Dy() != sheet.Height {
		o.img = ebiten.NewImage(sheet.Width, sheet.Height)
	}
	o.buf = sheet.Premultiplied(o.buf)
	o.img.WritePixels(o.buf)
}

// Draw renders the overlay onto screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
