package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/conneroisu/quant/internal/config"
	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/logging"
)

// addFlagValidation rejects bad values while flags are parsed, before any
// command runs.
func addFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

var outputFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

func validateOutputFormat(format string) error {
	return validateChoice("output format", format, outputFormats)
}

func validateLogFormat(format string) error {
	return validateChoice("log format", format, []string{config.FormatText, config.FormatJSON})
}

func validateLogLevel(level string) error {
	_, err := logging.ParseLevel(level)
	return err
}

func validatePrecision(value string) error {
	precision, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid precision: %s", value)
	}
	if precision < -1 || precision > config.MaxPrecision {
		return fmt.Errorf("precision must be between -1 and %d, got %d", config.MaxPrecision, precision)
	}
	return nil
}

// validateChoice accepts one of choices and lists them otherwise.
func validateChoice(what, value string, choices []string) error {
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return qerrors.NewEnhancedError(
		"invalid "+what,
		qerrors.NewValidationError(qerrors.ErrCodeValidationFailed, fmt.Sprintf("unsupported %s: %s", what, value)),
		[]qerrors.ErrorSuggestion{{
			Title:       "Use one of: " + strings.Join(choices, ", "),
			Description: "The default is " + choices[0],
		}},
	)
}
