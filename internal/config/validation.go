package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/logging"
)

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   qerrors.ValidationErrorCollection
	Warnings qerrors.ValidationErrorCollection
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return vr.Errors.HasErrors()
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return vr.Warnings.HasErrors()
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(title string, items []qerrors.ValidationError) {
		if len(items) == 0 {
			return
		}
		builder.WriteString(title + ":\n")
		for _, item := range items {
			builder.WriteString(fmt.Sprintf("  • %s: %v\n", item.Field(), item.Value()))
			builder.WriteString(fmt.Sprintf("    %s\n", item.Error()))
			for _, suggestion := range item.Suggestions() {
				builder.WriteString(fmt.Sprintf("    try: %s\n", suggestion))
			}
		}
	}

	write("Validation errors", vr.Errors.Errors)
	write("Validation warnings", vr.Warnings.Errors)

	return builder.String()
}

// ValidateConfigWithDetails reports every problem with config. Missing
// catalog files are warnings because they may be created later and picked
// up by `quant watch`.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{}

	validateOutputConfig(&config.Output, result)
	validateCatalogConfig(&config.Catalog, result)
	validateLogConfig(&config.Log, result)

	return result
}

func validateConfig(config *Config) error {
	result := ValidateConfigWithDetails(config)
	if result.HasErrors() {
		return result.Errors.ToQuantError()
	}
	return nil
}

func validateOutputConfig(config *OutputConfig, result *ValidationResult) {
	switch config.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		result.Errors.AddField("output.format", config.Format,
			"unsupported output format", FormatText, FormatJSON, FormatYAML)
	}

	if config.Precision < -1 || config.Precision > MaxPrecision {
		result.Errors.AddField("output.precision", config.Precision,
			fmt.Sprintf("precision must be between -1 and %d", MaxPrecision),
			"-1 for the shortest exact representation")
	}

	if _, err := language.Parse(config.Locale); err != nil {
		result.Errors.AddField("output.locale", config.Locale,
			"invalid BCP 47 language tag: "+err.Error(), "en", "de", "fr-CH")
	}
}

func validateCatalogConfig(config *CatalogConfig, result *ValidationResult) {
	seen := make(map[string]bool)
	for _, path := range config.Paths {
		if strings.TrimSpace(path) == "" {
			result.Errors.AddField("catalog.paths", path, "empty catalog path")
			continue
		}

		clean := filepath.Clean(path)
		if seen[clean] {
			result.Warnings.AddField("catalog.paths", path, "catalog listed more than once")
			continue
		}
		seen[clean] = true

		switch ext := strings.ToLower(filepath.Ext(clean)); ext {
		case ".yml", ".yaml":
		default:
			result.Errors.AddField("catalog.paths", path,
				"catalog files must be YAML", "units.yml")
			continue
		}

		if _, err := os.Stat(clean); err != nil {
			result.Warnings.AddField("catalog.paths", path, "catalog file not found")
		}
	}
}

func validateLogConfig(config *LogConfig, result *ValidationResult) {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		result.Errors.AddField("log.level", config.Level, err.Error(),
			"debug", "info", "warn", "error")
	}

	switch config.Format {
	case FormatText, FormatJSON:
	default:
		result.Errors.AddField("log.format", config.Format,
			"unsupported log format", FormatText, FormatJSON)
	}
}
