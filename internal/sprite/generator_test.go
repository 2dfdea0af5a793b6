package sprite

import (
	"context"
	"slices"
	"testing"

	"spritegen/internal/core"
	"spritegen/internal/render"
	sgerrors "spritegen/pkg/errors"
)

func TestGenerateDeterministicWithoutStochasticCodes(t *testing.T) {
	m := MustMask([]int{
		0, 0, -1,
		0, -1, 0,
		-1, 0, 0,
	}, 3, 3)
	a, err := Generate(m, seeded(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(m, seeded(999))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !slices.Equal(a.Grid.Cells(), b.Grid.Cells()) {
		t.Fatalf("grids differ:\n%s\n%s", a.Grid, b.Grid)
	}
}

func TestGenerateBufferMatchesGrid(t *testing.T) {
	res, err := Generate(robotish(), core.NewRNG(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	buf, grid := res.Buffer, res.Grid
	if buf.Width != grid.W || buf.Height != grid.H {
		t.Fatalf("buffer %dx%d, grid %dx%d", buf.Width, buf.Height, grid.W, grid.H)
	}
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			alpha := buf.At(x, y).A
			if (grid.At(x, y) == core.Empty) != (alpha == 0) {
				t.Fatalf("(%d,%d): cell %d with alpha %d", x, y, grid.At(x, y), alpha)
			}
		}
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	a, _ := Generate(robotish(), core.NewRNG(21))
	b, _ := Generate(robotish(), core.NewRNG(21))
	if !slices.Equal(a.Grid.Cells(), b.Grid.Cells()) || !slices.Equal(a.Buffer.Pix, b.Buffer.Pix) {
		t.Fatal("the same seed should reproduce grid and pixels")
	}
}

func TestGenerateMonochrome(t *testing.T) {
	res, err := Generate(robotish(), core.NewRNG(3), render.WithColored(false))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pix := res.Buffer.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		r, g, b := pix[i], pix[i+1], pix[i+2]
		black := r == 0 && g == 0 && b == 0
		white := r == 255 && g == 255 && b == 255
		if !black && !white {
			t.Fatalf("pixel %d is (%d,%d,%d), want pure black or white", i/4, r, g, b)
		}
	}
}

func TestGenerateNilMask(t *testing.T) {
	if _, err := Generate(nil, nil); !sgerrors.Is(err, sgerrors.ErrCodeInvalidMask) {
		t.Fatalf("expected INVALID_MASK, got %v", err)
	}
}

func TestNewGeneratorClampsOptions(t *testing.T) {
	g := NewGenerator(render.Options{Colored: true, Saturation: 5, EdgeBrightness: -1})
	opts := g.Options()
	if opts.Saturation != 1 || opts.EdgeBrightness != 0 {
		t.Fatalf("options not clamped: %+v", opts)
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := NewGenerator(render.DefaultOptions())
	items, err := gen.GenerateBatch(context.Background(), robotish(), 100, 6, 3)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("got %d items", len(items))
	}
	for i, item := range items {
		if item.Index != i || item.Seed != int64(100+i) {
			t.Fatalf("item %d has index %d seed %d", i, item.Index, item.Seed)
		}
		solo, err := gen.Generate(robotish(), core.NewRNG(item.Seed))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !slices.Equal(solo.Buffer.Pix, item.Result.Buffer.Pix) {
			t.Fatalf("item %d does not match a standalone run with its seed", i)
		}
	}

	serial, err := gen.GenerateBatch(context.Background(), robotish(), 100, 6, 1)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	for i := range items {
		if !slices.Equal(serial[i].Result.Grid.Cells(), items[i].Result.Grid.Cells()) {
			t.Fatalf("item %d depends on worker count", i)
		}
	}
}

func TestGenerateBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := NewGenerator(render.DefaultOptions())
	if _, err := gen.GenerateBatch(ctx, robotish(), 1, 4, 2); err == nil {
		t.Fatal("expected context error")
	}
	items, err := gen.GenerateBatch(context.Background(), robotish(), 1, 0, 2)
	if err != nil || items != nil {
		t.Fatalf("empty batch = %v, %v", items, err)
	}
}
