// Package cmd provides the quant command-line interface.
//
// Configuration sources, highest priority first:
//
//  1. Command-line flags (--output, --precision, --catalog, ...)
//  2. QUANT_<SECTION>_<OPTION> environment variables, e.g. QUANT_OUTPUT_FORMAT
//  3. The file named by --config or QUANT_CONFIG_FILE
//  4. .quant.yml in the current directory
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/quant/internal/catalog"
	"github.com/conneroisu/quant/internal/config"
	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/expr"
	"github.com/conneroisu/quant/internal/format"
	"github.com/conneroisu/quant/internal/logging"
	"github.com/conneroisu/quant/internal/registry"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quant",
	Short: "Dimension-checked unit conversion and arithmetic",
	Long: `Quant converts between units and evaluates expressions over physical
quantities, refusing to mix dimensions that do not combine.

Quick Start:
  quant convert 100 °C °F          Convert a single value
  quant eval "3 J + 2 kJ in kJ"    Evaluate an expression
  quant list --dimension length    List the units of a dimension
  quant relations                  Show how dimensions derive from each other
  quant watch -c units.yml         Reload a unit catalog as it changes
  quant convert -- -40 °C °F       Use -- before arguments that start with -

Extra units can be defined in YAML catalogs passed with --catalog or listed
under catalog.paths in .quant.yml.`,
	SilenceUsage: true,
}

// Execute runs the root command on the process arguments. Negative numbers
// are passed through as positional arguments.
func Execute() error {
	rootCmd.SetArgs(separateNegativeArgs(rootCmd, os.Args[1:]))
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetFlagErrorFunc(flagError)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .quant.yml, can also use QUANT_CONFIG_FILE env var)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", config.FormatText, "log format (text, json)")
	flags.StringP("output", "o", config.FormatText, "output format (text, json, yaml)")
	flags.Int("precision", -1, "decimal places to print, -1 for the shortest exact form")
	flags.String("locale", "en", "locale used for number formatting, e.g. de or fr-CH")
	flags.StringSliceP("catalog", "c", nil, "YAML unit catalog to load (repeatable)")

	addFlagValidation(flags, "output", validateOutputFormat)
	addFlagValidation(flags, "log-format", validateLogFormat)
	addFlagValidation(flags, "log-level", validateLogLevel)
	addFlagValidation(flags, "precision", validatePrecision)

	bindFlags()
}

// flagBindings maps persistent flags onto configuration keys.
var flagBindings = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"output":     "output.format",
	"precision":  "output.precision",
	"locale":     "output.locale",
	"catalog":    "catalog.paths",
}

func bindFlags() {
	for flag, key := range flagBindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// initConfig selects the configuration file and enables QUANT_ environment
// overrides. A missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("QUANT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quant")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

// app holds everything a command needs once configuration is resolved.
type app struct {
	config    *config.Config
	logger    logging.Logger
	units     *registry.UnitRegistry
	loader    *catalog.Loader
	formatter *format.Formatter
	evaluator *expr.Evaluator
}

// newApp loads configuration, builds the registry and loads the configured
// catalogs. Catalog problems are logged; the built-in units stay usable.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, qerrors.WrapConfig(err, qerrors.ErrCodeConfigInvalid, "failed to load configuration")
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug(commandContext(cmd), "using config file", "path", used)
	}

	formatter, err := format.New(cfg.Output)
	if err != nil {
		return nil, qerrors.WrapConfig(err, qerrors.ErrCodeConfigInvalid, "invalid output settings")
	}

	units := registry.NewWithBuiltins()
	loader := catalog.NewLoader(units, logger)
	if len(cfg.Catalog.Paths) > 0 {
		if _, err := loader.LoadAll(commandContext(cmd), cfg.Catalog.Paths); err != nil {
			logger.Warn(commandContext(cmd), err, "catalogs loaded with errors")
		}
	}

	return &app{
		config:    cfg,
		logger:    logger,
		units:     units,
		loader:    loader,
		formatter: formatter,
		evaluator: expr.New(units, logger),
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// outputFormatter builds only the formatter, for commands that need no units.
func outputFormatter() (*format.Formatter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, qerrors.WrapConfig(err, qerrors.ErrCodeConfigInvalid, "failed to load configuration")
	}
	formatter, err := format.New(cfg.Output)
	if err != nil {
		return nil, qerrors.WrapConfig(err, qerrors.ErrCodeConfigInvalid, "invalid output settings")
	}
	return formatter, nil
}
