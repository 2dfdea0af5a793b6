package cli

import (
	"github.com/spf13/cobra"

	"spritegen/internal/app"
	"spritegen/internal/presets"
)

func (c *CLI) viewCommand() *cobra.Command {
	cfg := app.Config{Count: 16, Cols: 8, Scale: 4, Padding: 2, AutoRate: 1}
	cmd := &cobra.Command{
		Use:   "view <preset>",
		Short: "Open an interactive sprite sheet window (needs -tags ebiten)",
		Long: `Open an interactive sprite sheet window.

Keys: Space rerolls with a new seed, R re-renders the current seed,
A toggles automatic rerolls, G toggles the cell-code overlay,
P logs the current seed and options, Q or Esc quits. Click the panel
buttons to adjust render options.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := presets.Get(args[0])
			if err != nil {
				return err
			}
			opts, err := c.renderOptions()
			if err != nil {
				return err
			}
			cfg.Name = args[0]
			cfg.Mask = mask
			cfg.Options = opts
			cfg.Seed = c.resolveSeed(cmd, cfg.Seed)
			cfg.Logger = c.Logger
			return app.Run(cfg)
		},
	}
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "seed of the first sprite (random when unset)")
	cmd.Flags().IntVarP(&cfg.Count, "count", "n", cfg.Count, "sprites per sheet")
	cmd.Flags().IntVar(&cfg.Cols, "cols", cfg.Cols, "sprites per row")
	cmd.Flags().IntVar(&cfg.Scale, "scale", cfg.Scale, "integer upscale factor")
	cmd.Flags().IntVar(&cfg.Padding, "padding", cfg.Padding, "pixels between sprites")
	cmd.Flags().Float64Var(&cfg.AutoRate, "auto-rate", cfg.AutoRate, "automatic rerolls per second")
	return cmd
}
