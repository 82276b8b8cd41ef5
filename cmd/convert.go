package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	qerrors "github.com/conneroisu/quant/internal/errors"
)

var convertCmd = &cobra.Command{
	Use:     "convert VALUE FROM TO",
	Aliases: []string{"c"},
	Short:   "Convert a value between units of the same dimension",
	Long: `Convert a value from one unit to another. Units may be given by symbol
or name, and must measure the same dimension.

Negative values are accepted as they are; put flags before them, or
separate the arguments from the flags with --.

Examples:
  quant convert 100 °C °F
  quant convert 26.2 mi km
  quant convert 1 kWh J -o json
  quant convert -40 °C °F
  quant convert -o json -- -40 °C °F`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return qerrors.NewValidationError(qerrors.ErrCodeValidationFailed, "invalid value: "+args[0])
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	res, err := a.evaluator.Convert(value, args[1], args[2])
	if err != nil {
		return err
	}
	return a.formatter.Result(cmd.OutOrStdout(), res)
}
