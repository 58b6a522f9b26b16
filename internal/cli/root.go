package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/svgcombine/combine"
	"github.com/benoitkugler/svgcombine/internal/config"
	"github.com/benoitkugler/svgcombine/internal/log"
	"github.com/benoitkugler/svgcombine/internal/version"
	"github.com/benoitkugler/svgcombine/storage"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

const rootExample = `  # Combine paths 1 and 3 of test.svg into result.svg
  svgcombine

  # Choose the input, the paths and the output
  svgcombine -i drawing.svg -s 0,2 -o merged.svg --open

  # List the paths of a document to choose indices
  svgcombine list -i drawing.svg
`

// Opener displays a local file; tests replace the system browser with it.
type Opener func(path string) error

// NewRootCmd returns the svgcombine command. A nil opener
// uses the system browser.
func NewRootCmd(name, shortDesc, longDesc string, opener Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Example:       rootExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().String("config", "", "YAML file with the run settings")
	cmd.PersistentFlags().StringP("input", "i", "", "SVG document to read (default \"test.svg\")")
	cmd.PersistentFlags().String("order", "", "Path order: kind (path, polyline, polygon, line, ellipse, circle, rect) or document (default \"kind\")")
	cmd.PersistentFlags().String("error_mode", "", "Unsupported elements: ignore, warn or strict (default \"ignore\")")

	cmd.Flags().StringP("output", "o", "", "SVG document to write (default \"result.svg\")")
	cmd.Flags().IntSliceP("select", "s", nil, "Indices of the paths to combine, in order (default [1,3])")
	cmd.Flags().Bool("open", false, "Open the result in the system browser")
	cmd.Flags().String("png", "", "Also write a PNG preview of the result")
	cmd.Flags().String("pdf", "", "Also write a PDF preview of the result")

	for _, flag := range []string{"config", "input"} {
		if err := cmd.MarkPersistentFlagFilename(flag); err != nil {
			panic(err)
		}
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cc)
		if err != nil {
			return err
		}

		res, err := cfg.Combiner(combinerOptions(opener)...).Run(cc.Context(), cfg.Request())
		if err != nil {
			return err
		}

		slog.Info("done", "paths", res.Paths, "segments", res.Segments, "subpaths", res.Subpaths)

		return nil
	}

	cmd.AddCommand(NewSplitCmd(opener))
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig resolves the settings: defaults, then the config
// file, then the flags explicitly given.
func loadConfig(cc *cobra.Command) (config.Config, error) {
	flags := cc.Flags()
	cfg := config.Default()

	path, err := flags.GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if path != "" {
		data, err := storage.New().Load(cc.Context(), path)
		if err != nil {
			return cfg, err
		}

		cfg, err = config.Parse(data, cfg)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	var merr error

	overrideString := func(name string, dst *string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		v, err := flags.GetString(name)
		if err != nil {
			merr = multierror.Append(merr, err)
			return
		}
		*dst = v
	}

	overrideString("input", &cfg.Input)
	overrideString("output", &cfg.Output)
	overrideString("order", &cfg.Order)
	overrideString("error_mode", &cfg.ErrorMode)
	overrideString("png", &cfg.PNG)
	overrideString("pdf", &cfg.PDF)
	overrideString("pattern", &cfg.SplitPattern)

	if flags.Lookup("select") != nil && flags.Changed("select") {
		indices, err := flags.GetIntSlice("select")
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		cfg.Indices = indices
	}

	if flags.Lookup("open") != nil && flags.Changed("open") {
		open, err := flags.GetBool("open")
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		cfg.Open = open
	}

	if merr != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func combinerOptions(opener Opener) []combine.Option {
	if opener == nil {
		return nil
	}

	return []combine.Option{combine.WithOpener(opener)}
}
