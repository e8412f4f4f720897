package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/shapes/internal/config"
)

// logLevel is shared by the default handler so the level can change after
// the config file is read.
var logLevel = new(slog.LevelVar)

// rootOptions holds the persistent flags and the viper instance that binds
// them to SHAPES_* environment variables.
type rootOptions struct {
	cfgFile string
	verbose bool
	viper   *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{viper: viper.New()}

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Measure and compare circles, rectangles and regular polygons",
		Long: `shapes builds validated geometric shapes from command line parameters,
reports their area, perimeter and description, and compares shapes with the
same equality rules the shapes library uses, including the one-way tolerance
between squares and four-sided regular polygons.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.initConfig()
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.shapes.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.String("format", "", "Output format: table, json, yaml (default from config, else table)")
	_ = opts.viper.BindPFlag("output.format", flags.Lookup("format"))

	cmd.AddCommand(
		newMeasureCmd(opts),
		newCompareCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// initConfig binds environment variables such as SHAPES_OUTPUT_FORMAT.
func (o *rootOptions) initConfig() {
	if o.cfgFile == "" {
		o.cfgFile = config.DefaultConfigPath()
	}

	o.viper.SetEnvPrefix("shapes")
	o.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	o.viper.AutomaticEnv()
}

// formatOverride returns the --format flag or SHAPES_OUTPUT_FORMAT, if set.
func (o *rootOptions) formatOverride() string {
	if o.viper.IsSet("output.format") {
		return o.viper.GetString("output.format")
	}
	return ""
}

// logLevelOverride returns SHAPES_LOG_LEVEL, or "debug" under --verbose.
func (o *rootOptions) logLevelOverride() string {
	if o.verbose {
		return "debug"
	}
	if o.viper.IsSet("log.level") {
		return o.viper.GetString("log.level")
	}
	return ""
}

func setupLogging(w io.Writer, verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}
