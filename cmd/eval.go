package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	qerrors "github.com/conneroisu/quant/internal/errors"
)

var evalCmd = &cobra.Command{
	Use:     "eval [EXPRESSION...]",
	Aliases: []string{"e"},
	Short:   "Evaluate a quantity expression",
	Long: `Evaluate an expression over quantities. Adding or converting between
different dimensions is an error; products and quotients take the dimension
their relation defines.

With no arguments, expressions are read from standard input, one per line.
An expression starting with a minus sign is accepted as it is; put flags
before it, or separate it from the flags with --.

Examples:
  quant eval "3 J + 2 kJ in kJ"
  quant eval 100 km / 2 h in mi/h
  quant eval "10 kg * 9.81 [m/s²] in kN"
  quant eval "-40 °C in °F"
  quant eval -o json -- "-20 °C in K"
  echo "sqrt(16 m²)" | quant eval`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		res, err := a.evaluator.Evaluate(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return a.formatter.Result(out, res)
	}

	failed, lineNo := 0, 0
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := a.evaluator.Evaluate(ctx, line)
		if err != nil {
			failed++
			a.logger.Debug(ctx, "expression failed", "line", lineNo, "error", qerrors.GetErrorContext(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", qerrors.FormatErrorWithSuggestions(err))
			continue
		}
		if err := a.formatter.Result(out, res); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read expressions: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d expression(s) failed", failed)
	}
	return nil
}
