//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spritegen/internal/core"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	"spritegen/internal/ui"
	sgerrors "spritegen/pkg/errors"
)

const (
	hudWidth     = 220
	hudMinHeight = 260
)

// Viewer adapts sprite generation to the ebiten.Game interface.
type Viewer struct {
	cfg     Config
	opts    *render.Options
	seed    int64
	auto    *core.Interval
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *log.Logger

	sheet    *ebiten.Image
	sheetBuf []byte
	sheetW   int
	sheetH   int
}

// New constructs a Viewer and renders the first sheet.
func New(cfg Config) (*Viewer, error) {
	cfg = cfg.withDefaults()
	if cfg.Mask == nil {
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidMask, "viewer needs a mask")
	}
	opts := cfg.Options
	v := &Viewer{
		cfg:     cfg,
		opts:    &opts,
		seed:    cfg.Seed,
		auto:    core.NewInterval(0),
		overlay: ui.NewOverlay(),
		logger:  cfg.Logger,
	}
	v.hud = ui.NewHUD(v.opts, cfg.Name, hudWidth)
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Run opens the window and blocks until it closes.
func Run(cfg Config) error {
	v, err := New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("spritegen - " + v.cfg.Name)
	ebiten.SetWindowSize(v.Layout(0, 0))
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Reroll renders a new sheet starting at seed.
func (v *Viewer) Reroll(seed int64) error {
	v.seed = seed
	return v.regenerate()
}

func (v *Viewer) regenerate() error {
	gen := sprite.NewGenerator(*v.opts)
	items, err := gen.GenerateBatch(context.Background(), v.cfg.Mask, v.seed, v.cfg.Count, 0)
	if err != nil {
		return err
	}
	bufs := make([]*render.PixelBuffer, len(items))
	grids := make([]*core.CellGrid, len(items))
	for i, it := range items {
		bufs[i] = render.Resize(it.Result.Buffer, v.cfg.Scale)
		grids[i] = it.Result.Grid.CellGrid
	}
	sheet := render.Sheet(bufs, v.cfg.Cols, v.cfg.Padding)
	if v.sheet == nil || v.sheetW != sheet.Width || v.sheetH != sheet.Height {
		v.sheet = ebiten.NewImage(sheet.Width, sheet.Height)
		v.sheetW, v.sheetH = sheet.Width, sheet.Height
	}
	// ebiten textures are premultiplied; empty pixels are transparent white.
	v.sheetBuf = sheet.Premultiplied(v.sheetBuf)
	v.sheet.WritePixels(v.sheetBuf)
	v.overlay.SetGrids(grids, v.cfg.Scale, v.cfg.Cols, v.cfg.Padding)
	v.logger.Debug("rendered sheet", "seed", v.seed, "count", len(items))
	return nil
}

// Update handles per-frame input.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if v.auto.Enabled() {
			v.auto.SetRate(0)
		} else {
			v.auto.SetRate(v.cfg.AutoRate)
		}
		v.logger.Info("auto reroll", "enabled", v.auto.Enabled())
	}
	v.overlay.Update()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), v.auto.Due(time.Now()):
		return v.Reroll(rand.Int64())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return v.regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		v.logger.Info("current sheet", "seed", v.seed, "options", *v.opts)
	}

	if v.hud.Update(v.sheetW) {
		return v.regenerate()
	}
	return nil
}

// Draw renders the sheet, overlay and HUD.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 40, B: 48, A: 255})
	screen.DrawImage(v.sheet, nil)
	v.overlay.Draw(screen)
	v.hud.Draw(screen, v.sheetW, v.screenHeight())
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.sheetW + hudWidth, v.screenHeight()
}

func (v *Viewer) screenHeight() int {
	return max(v.sheetH, hudMinHeight)
}
