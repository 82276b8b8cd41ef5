// Package config provides configuration management for quant using Viper
// for loading from files, environment variables and command-line flags.
//
// Configuration lives in .quant.yml (or the file named by --config or
// QUANT_CONFIG_FILE). Every key can be overridden from the environment with
// the QUANT_ prefix, e.g. QUANT_OUTPUT_FORMAT=json.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides.
const EnvPrefix = "QUANT"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxPrecision bounds output.precision.
const MaxPrecision = 17

type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	// Precision is the number of decimals printed; -1 prints the shortest
	// representation that round-trips.
	Precision int    `mapstructure:"precision" yaml:"precision"`
	Locale    string `mapstructure:"locale" yaml:"locale"`
}

type CatalogConfig struct {
	Paths []string `mapstructure:"paths" yaml:"paths"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.precision", -1)
	v.SetDefault("output.locale", "en")
	v.SetDefault("catalog.paths", []string{})
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", FormatText)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText, Precision: -1, Locale: "en"},
		Log:    LogConfig{Level: "warn", Format: FormatText},
	}
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom decodes and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Slices set through env or flags arrive as a single string.
	if v.IsSet("catalog.paths") && len(config.Catalog.Paths) == 0 {
		config.Catalog.Paths = v.GetStringSlice("catalog.paths")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
