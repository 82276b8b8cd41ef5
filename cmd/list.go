package cmd

import (
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/pkg/quantity"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List known units",
	Long: `List every unit known to quant, grouped by dimension, with its definition
in SI terms and where it came from.

Examples:
  quant list                          # All units
  quant list -d temperature           # Units of one dimension
  quant list -s units.yml             # Units loaded from one catalog
  quant list -c units.yml -o yaml     # Catalog YAML that can be loaded again`,
	RunE: runList,
}

var (
	listDimension string
	listSource    string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listDimension, "dimension", "d", "", "Only list units of this dimension")
	listCmd.Flags().StringVarP(&listSource, "source", "s", "", "Only list units from this catalog, or \"builtin\"")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	entries, err := selectUnits(a.units, listDimension, listSource)
	if err != nil {
		return err
	}
	return a.formatter.Units(cmd.OutOrStdout(), entries)
}

// selectUnits filters the registry and orders the result by dimension,
// keeping registration order within a dimension.
func selectUnits(units *registry.UnitRegistry, dimension, source string) ([]*registry.UnitEntry, error) {
	var entries []*registry.UnitEntry
	if dimension != "" {
		if _, ok := quantity.LookupDimension(dimension); !ok {
			return nil, qerrors.ErrUnknownDimension(dimension)
		}
		entries = units.ByDimension(dimension)
	} else {
		entries = units.GetAll()
	}

	if source != "" {
		if source != registry.SourceBuiltin {
			if abs, err := filepath.Abs(source); err == nil {
				source = abs
			}
		}
		entries = slices.DeleteFunc(entries, func(e *registry.UnitEntry) bool {
			return e.Source != source
		})
	}

	rank := make(map[string]int)
	for i, info := range quantity.Dimensions() {
		rank[info.Name] = i
	}
	slices.SortStableFunc(entries, func(a, b *registry.UnitEntry) int {
		return rank[a.Dimension()] - rank[b.Dimension()]
	})
	return entries, nil
}
