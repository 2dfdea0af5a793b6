package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"spritegen/internal/presets"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	sgerrors "spritegen/pkg/errors"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	count   int
	seed    int64
	scale   int
	out     string
	sheet   bool
	cols    int
	padding int
	workers int
}

// manifest records how every file of a generate run can be reproduced.
type manifest struct {
	Preset    string          `json:"preset"`
	Options   render.Options  `json:"options"`
	Scale     int             `json:"scale"`
	CreatedAt time.Time       `json:"created_at"`
	Sheet     string          `json:"sheet,omitempty"`
	Sprites   []manifestEntry `json:"sprites"`
}

type manifestEntry struct {
	ID   string `json:"id"`
	File string `json:"file"`
	Seed int64  `json:"seed"`
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{count: 1, scale: 1, out: ".", padding: 1}

	cmd := &cobra.Command{
		Use:   "generate <preset>",
		Short: "Render sprites to PNG files",
		Long: `Render one or more sprites from a preset mask and write them as PNG files
together with a manifest.json recording the seed of every sprite.

Sprite i of a run uses seed+i, so any single sprite can be re-rendered with
--seed and --count 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seed = c.resolveSeed(cmd, opts.seed)
			return c.runGenerate(cmd.Context(), cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of sprites")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed of the first sprite (random when unset)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "integer upscale factor")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().BoolVar(&opts.sheet, "sheet", false, "also write all sprites into one sprite sheet")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "sprite sheet columns (default: all in one row)")
	cmd.Flags().IntVar(&opts.padding, "padding", opts.padding, "transparent pixels between sheet cells")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel renderers (default: GOMAXPROCS)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, name string, opts generateOpts) error {
	if opts.count < 1 {
		return sgerrors.New(sgerrors.ErrCodeInvalidInput, "--count must be positive, got %d", opts.count)
	}
	if opts.scale < 1 {
		return sgerrors.New(sgerrors.ErrCodeInvalidInput, "--scale must be positive, got %d", opts.scale)
	}
	mask, err := presets.Get(name)
	if err != nil {
		return err
	}
	renderOpts, err := c.renderOptions()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prog := newProgress(c.Logger)
	items, err := sprite.NewGenerator(renderOpts).GenerateBatch(ctx, mask, opts.seed, opts.count, opts.workers)
	if err != nil {
		return err
	}

	m := manifest{
		Preset:    name,
		Options:   renderOpts,
		Scale:     opts.scale,
		CreatedAt: time.Now().UTC(),
		Sprites:   make([]manifestEntry, 0, len(items)),
	}
	bufs := make([]*render.PixelBuffer, len(items))
	for i, it := range items {
		bufs[i] = render.Resize(it.Result.Buffer, opts.scale)
		file := fmt.Sprintf("%s-%03d.png", name, it.Index)
		if err := writePNGFile(filepath.Join(opts.out, file), bufs[i]); err != nil {
			return err
		}
		m.Sprites = append(m.Sprites, manifestEntry{ID: uuid.NewString(), File: file, Seed: it.Seed})
		c.Logger.Debug("wrote sprite", "file", file, "seed", it.Seed)
	}

	if opts.sheet {
		m.Sheet = name + "-sheet.png"
		if err := writePNGFile(filepath.Join(opts.out, m.Sheet), render.Sheet(bufs, opts.cols, opts.padding)); err != nil {
			return err
		}
	}
	if err := writeManifest(filepath.Join(opts.out, "manifest.json"), m); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d sprites", len(items)))

	out := cmd.OutOrStdout()
	printSuccess(out, "Wrote %s sprites to %s", styleHighlight.Render(fmt.Sprint(len(items))), opts.out)
	if m.Sheet != "" {
		printDetail(out, "Sheet: %s", m.Sheet)
	}
	printDetail(out, "Seeds: %d..%d", opts.seed, opts.seed+int64(len(items))-1)
	return nil
}

func writePNGFile(path string, b *render.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.EncodePNG(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeManifest(path string, m manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
