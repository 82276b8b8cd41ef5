package cmd

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	qerrors "github.com/conneroisu/quant/internal/errors"
)

// negativeNumber matches a token that starts like a negative magnitude,
// e.g. "-40", "-.5" or "-40 °C in °F".
var negativeNumber = regexp.MustCompile(`^-(\d|\.\d)`)

var numericShorthand = regexp.MustCompile(`unknown shorthand flag: '[\d.]'`)

// separateNegativeArgs inserts "--" before the first negative number so the
// flag parser reads it as a positional argument. Values of flags such as
// "--precision -1" are left alone, as is anything after an explicit "--".
// Flags after the inserted separator are taken as positionals, so they have
// to come before a negative value.
func separateNegativeArgs(root *cobra.Command, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !negativeNumber.MatchString(arg) {
			continue
		}
		if i > 0 && takesValue(root, args[i-1]) {
			continue
		}

		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

// takesValue reports whether token is a flag that consumes the next argument.
func takesValue(root *cobra.Command, token string) bool {
	if !strings.HasPrefix(token, "-") || token == "--" || strings.Contains(token, "=") {
		return false
	}
	name := strings.TrimLeft(token, "-")
	long := strings.HasPrefix(token, "--")
	if name == "" || (!long && len(name) != 1) {
		return false
	}

	commands := append([]*cobra.Command{root}, root.Commands()...)
	for _, c := range commands {
		for _, set := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			var f *pflag.Flag
			if long {
				f = set.Lookup(name)
			} else {
				f = set.ShorthandLookup(name)
			}
			if f != nil {
				return f.NoOptDefVal == ""
			}
		}
	}
	return false
}

// flagError points at "--" when a negative number was read as a flag.
func flagError(_ *cobra.Command, err error) error {
	if !numericShorthand.MatchString(err.Error()) {
		return err
	}
	return qerrors.NewEnhancedError(
		"unknown flag",
		err,
		[]qerrors.ErrorSuggestion{{
			Title:       "Separate negative values with --",
			Description: "Arguments after -- are never read as flags",
			Command:     "quant convert -- -40 °C °F",
		}},
	)
}
