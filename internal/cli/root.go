// Package cli provides the command-line interface for colormix.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/colormix/internal/config"
	"github.com/jmylchreest/colormix/internal/input"
	"github.com/jmylchreest/colormix/internal/input/file"
	"github.com/jmylchreest/colormix/internal/logging"
	"github.com/jmylchreest/colormix/internal/mix"
	"github.com/jmylchreest/colormix/internal/version"
)

// NewRootCmd builds the colormix command. Each call has its own settings.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "colormix [flags] [COLOR_CODES...]",
		Short: "Create a new colour from a list of colour codes",
		Long: `colormix creates a new colour from colours given as arguments and colours
read from a text file (colors.txt by default, one code per line).

Colour codes are either hex (#rgb, #rrggbb, #rrggbbaa, '#' optional) or
decimal "r,g,b,a" with each channel in 0-255.

Modes:
  mix           average of every channel
  lowest        lowest value of every channel
  highest       highest value of every channel
  mix-saturate  set the saturation of the last colour to the average
                saturation of the others

Unknown modes fall back to mix.

Examples:
  # Average two colours
  colormix f0a 0,0,255,255

  # Highest channels of the colours in colors.txt
  colormix --mode highest

  # Table output with swatches
  colormix --format table --preview always ff0000 00ff00`,
		Args:         cobra.ArbitraryArgs,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			used, err := config.Init(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd, v, used, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./colormix.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.Flags().StringP("mode", "m", "mix", "mode for creating a new colour (mix, lowest, highest, mix-saturate)")
	rootCmd.Flags().StringP("file", "f", file.DefaultPath, "file with one colour code per line")
	rootCmd.Flags().StringP("format", "o", config.FormatText, "output format (text, table, json)")
	rootCmd.Flags().String("preview", config.PreviewAuto, "show colour swatches (auto, always, never)")

	bindFlag(v, config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	bindFlag(v, config.KeyQuiet, rootCmd.PersistentFlags().Lookup("quiet"))
	bindFlag(v, config.KeyMode, rootCmd.Flags().Lookup("mode"))
	bindFlag(v, config.KeyFile, rootCmd.Flags().Lookup("file"))
	bindFlag(v, config.KeyFormat, rootCmd.Flags().Lookup("format"))
	bindFlag(v, config.KeyPreview, rootCmd.Flags().Lookup("preview"))

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// run collects colour codes, combines them and prints the result.
func run(cmd *cobra.Command, v *viper.Viper, configFile string, args []string) error {
	settings := config.FromViper(v)
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), settings.Verbose, settings.Quiet)
	if configFile != "" {
		logger.Debug("using config file", "path", configFile)
	}

	src := file.New(settings.File)
	fileCodes, err := src.Load()
	if err != nil {
		return err
	}
	if len(fileCodes) == 0 {
		logger.Debug("no colour codes read from file", "path", src.Path())
	}

	codes := make([]string, 0, len(args)+len(fileCodes))
	codes = append(codes, args...)
	codes = append(codes, fileCodes...)

	colours, failures := input.Collect(codes, logger)
	logger.Debug("collected colours", "loaded", len(colours), "failed", len(failures))

	mode := mix.ParseMode(settings.Mode)
	if mode.String() != settings.Mode {
		logger.Debug("unknown mode, using default", "mode", settings.Mode, "default", mode.String())
	}

	r := newRenderer(cmd.OutOrStdout(), settings.Format, settings.Preview)
	if len(colours) == 0 {
		return r.renderEmpty(mode)
	}

	res, err := mix.Apply(mode, colours)
	if err != nil {
		if !errors.Is(err, mix.ErrInsufficientInputs) {
			return fmt.Errorf("failed to create colour: %w", err)
		}
		logger.Info("cannot compute new saturation, not enough colours", "mode", mode.String(), "count", len(colours))
	}

	return r.render(mode, res)
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
