package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"spritegen/internal/presets"
)

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available masks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Presets"))
			for _, name := range presets.Names() {
				m, err := presets.Get(name)
				if err != nil {
					continue
				}
				size := m.GridSize()
				printInfo(out, "%s %s", styleHighlight.Render(name),
					styleDim.Render(fmt.Sprintf("%dx%d mask, %dx%d sprite", m.Width(), m.Height(), size.W, size.H)))
				printDetail(out, "mirror x=%t y=%t stochastic=%t", m.MirrorX(), m.MirrorY(), m.Stochastic())
			}
			return nil
		},
	}
}
