package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"spritegen/internal/core"
	"spritegen/internal/presets"
	"spritegen/internal/render"
	"spritegen/internal/sprite"
	sgerrors "spritegen/pkg/errors"
)

func (c *CLI) previewCommand() *cobra.Command {
	var (
		seed    int64
		count   = 1
		scale   = 1
		cols    int
		padding = 1
	)
	cmd := &cobra.Command{
		Use:   "preview <preset>",
		Short: "Print sprites to the terminal as colored half-blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || scale < 1 {
				return sgerrors.New(sgerrors.ErrCodeInvalidInput, "--count and --scale must be positive")
			}
			mask, err := presets.Get(args[0])
			if err != nil {
				return err
			}
			opts, err := c.renderOptions()
			if err != nil {
				return err
			}
			seed = c.resolveSeed(cmd, seed)
			items, err := sprite.NewGenerator(opts).GenerateBatch(cmd.Context(), mask, seed, count, 0)
			if err != nil {
				return err
			}
			bufs := make([]*render.PixelBuffer, len(items))
			for i, it := range items {
				bufs[i] = render.Resize(it.Result.Buffer, scale)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.ANSI(render.Sheet(bufs, cols, padding), lipgloss.NewRenderer(out)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the first sprite (random when unset)")
	cmd.Flags().IntVarP(&count, "count", "n", count, "number of sprites")
	cmd.Flags().IntVar(&scale, "scale", scale, "integer upscale factor")
	cmd.Flags().IntVar(&cols, "cols", 0, "sprites per row (default: all in one row)")
	cmd.Flags().IntVar(&padding, "padding", padding, "blank pixels between sprites")
	return cmd
}

func (c *CLI) dumpCommand() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "dump <preset>",
		Short: "Print the resolved cell grid (-1 border, 0 empty, 1 body)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := presets.Get(args[0])
			if err != nil {
				return err
			}
			seed = c.resolveSeed(cmd, seed)
			grid, err := sprite.Resolve(mask, core.NewRNG(seed))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), grid.String())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (random when unset)")
	return cmd
}
