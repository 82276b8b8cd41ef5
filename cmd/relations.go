package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/pkg/quantity"
)

var relationsCmd = &cobra.Command{
	Use:     "relations",
	Aliases: []string{"r"},
	Short:   "Show how dimensions combine",
	Long: `Show the derivation relations between dimensions: which products,
quotients and roots keep a named dimension. Combinations not listed
evaluate to an unhandled quantity.

Examples:
  quant relations
  quant relations -d energy
  quant relations -o json`,
	RunE: runRelations,
}

var relationsDimension string

func init() {
	rootCmd.AddCommand(relationsCmd)

	relationsCmd.Flags().StringVarP(&relationsDimension, "dimension", "d", "", "Only show relations involving this dimension")
}

func runRelations(cmd *cobra.Command, args []string) error {
	formatter, err := outputFormatter()
	if err != nil {
		return err
	}

	relations, err := selectRelations(quantity.Derivations(), relationsDimension)
	if err != nil {
		return err
	}
	return formatter.Relations(cmd.OutOrStdout(), relations)
}

func selectRelations(graph *quantity.Graph, dimension string) ([]quantity.Relation, error) {
	relations := graph.Relations()
	if dimension == "" {
		return relations, nil
	}
	if _, ok := quantity.LookupDimension(dimension); !ok {
		return nil, qerrors.ErrUnknownDimension(dimension)
	}
	return slices.DeleteFunc(relations, func(r quantity.Relation) bool {
		return r.Left != dimension && r.Right != dimension && r.Result != dimension
	}), nil
}
