package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/svgcombine/combine"
)

// NewListCmd returns the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the paths of the input with their index",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cc)
			if err != nil {
				return err
			}

			doc, err := cfg.Combiner().Load(cc.Context(), cfg.Input)
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("INDEX", "KIND", "ID", "SEGMENTS", "SUBPATHS", "BOUNDS", "FILL")

			for _, info := range combine.Describe(doc) {
				t.Row(
					strconv.Itoa(info.Index),
					info.Kind.String(),
					info.ID,
					strconv.Itoa(info.Segments),
					strconv.Itoa(info.Subpaths),
					fmt.Sprintf("%g,%g %gx%g", info.Bounds.X, info.Bounds.Y, info.Bounds.W, info.Bounds.H),
					info.Fill,
				)
			}

			fmt.Fprintln(cc.OutOrStdout(), t.Render())

			return nil
		},
	}
}
