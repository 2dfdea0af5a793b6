//go:build !ebiten

package ui

import "spritegen/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Visible is always false in headless builds.
func (o *Overlay) Visible() bool { return false }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetGrids is a no-op in headless builds.
func (o *Overlay) SetGrids([]*core.CellGrid, int, int, int) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
