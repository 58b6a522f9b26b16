package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const splitDesc = `Write each path of the input to its own SVG file, with the
output style, to inspect the paths before choosing which to combine.
The pattern is formatted with the path index.
`

// NewSplitCmd returns the split command.
func NewSplitCmd(opener Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "split",
		Short:   "Export every path to its own file",
		Long:    splitDesc,
		Example: "  svgcombine split -i drawing.svg --pattern out/path_%d.svg",
		Args:    cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cc)
			if err != nil {
				return err
			}

			workers, err := cc.Flags().GetInt("workers")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			c := cfg.Combiner(combinerOptions(opener)...)
			c.Workers = workers

			outputs, err := c.Split(cc.Context(), cfg.Input, cfg.SplitPattern)
			if err != nil {
				return err
			}

			for _, output := range outputs {
				fmt.Fprintln(cc.OutOrStdout(), output)
			}

			slog.Debug("split done", "files", len(outputs))

			return nil
		},
	}

	cmd.Flags().String("pattern", "", "Output file pattern, containing %d (default \"result_%d.svg\")")
	cmd.Flags().Int("workers", 4, "Number of files written concurrently")

	return cmd
}
