package sprite

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"spritegen/internal/core"
)

// BatchItem is one sprite of a batch together with the seed that reproduces it.
type BatchItem struct {
	Index  int
	Seed   int64
	Result *Result
}

// GenerateBatch renders n sprites from m on up to workers goroutines. Sprite i
// uses seed+i, so the output does not depend on the worker count. A
// non-positive workers value uses GOMAXPROCS.
func (g *Generator) GenerateBatch(ctx context.Context, m *Mask, seed int64, n, workers int) ([]BatchItem, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	items := make([]BatchItem, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := seed + int64(i)
			res, err := g.Generate(m, core.NewRNG(s))
			if err != nil {
				return err
			}
			items[i] = BatchItem{Index: i, Seed: s, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
