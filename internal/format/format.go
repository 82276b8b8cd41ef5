// Package format renders quantities, unit listings and relations as text,
// JSON or YAML. Text output localises numbers and headings.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/quant/internal/catalog"
	"github.com/conneroisu/quant/internal/config"
	"github.com/conneroisu/quant/internal/expr"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/pkg/quantity"
)

// Formatter writes output in one format and locale.
type Formatter struct {
	format    string
	precision int
	tag       language.Tag
	printer   *message.Printer
}

// New creates a formatter from the output section of the configuration.
func New(cfg config.OutputConfig) (*Formatter, error) {
	switch cfg.Format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if cfg.Precision < -1 || cfg.Precision > config.MaxPrecision {
		return nil, fmt.Errorf("precision must be between -1 and %d", config.MaxPrecision)
	}

	tag := language.English
	if cfg.Locale != "" {
		parsed, err := language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
		}
		tag = parsed
	}

	return &Formatter{
		format:    cfg.Format,
		precision: cfg.Precision,
		tag:       tag,
		printer:   message.NewPrinter(tag),
	}, nil
}

// Format returns the output format name.
func (f *Formatter) Format() string { return f.format }

// Number renders v for the formatter's locale. A precision of -1 keeps the
// shortest digits that round-trip at 15 significant digits, so conversion
// noise such as 211.99999999999994 prints as 212; very large and very small
// magnitudes use scientific notation.
func (f *Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	abs := math.Abs(v)
	scientific := abs != 0 && (abs >= 1e15 || abs < 1e-6)

	if f.precision >= 0 {
		if scientific {
			return f.printer.Sprint(number.Scientific(v, number.MaxFractionDigits(f.precision)))
		}
		return f.printer.Sprint(number.Decimal(v,
			number.MinFractionDigits(f.precision),
			number.MaxFractionDigits(f.precision)))
	}

	v = significant(v)
	if scientific {
		mantissa := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa = mantissa[:strings.IndexByte(mantissa, 'e')]
		return f.printer.Sprint(number.Scientific(v, number.MaxFractionDigits(fractionDigits(mantissa))))
	}
	return f.printer.Sprint(number.Decimal(v,
		number.MaxFractionDigits(fractionDigits(strconv.FormatFloat(v, 'f', -1, 64)))))
}

// significant rounds v to 15 significant digits, the most a float64 holds
// exactly.
func significant(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

func fractionDigits(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Quantity renders a value followed by its unit symbol.
func (f *Formatter) Quantity(v float64, symbol string) string {
	if symbol == "" {
		return f.Number(v)
	}
	return f.Number(v) + " " + symbol
}

// Title renders a dimension name as a heading, e.g. "Angular Velocity".
func (f *Formatter) Title(dimension string) string {
	return cases.Title(f.tag).String(strings.ReplaceAll(dimension, "_", " "))
}

// Value is a float that stays valid JSON when it is not finite.
type Value float64

// MarshalJSON writes finite values as numbers and the rest as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return json.Marshal(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return []byte(strconv.FormatFloat(x, 'g', -1, 64)), nil
}

// ResultRecord is the machine-readable form of an evaluated expression.
type ResultRecord struct {
	Input     string `json:"input" yaml:"input"`
	Value     Value  `json:"value" yaml:"value"`
	Unit      string `json:"unit" yaml:"unit"`
	Dimension string `json:"dimension" yaml:"dimension"`
	SI        Value  `json:"si" yaml:"si"`
}

// Result writes one evaluated expression.
func (f *Formatter) Result(w io.Writer, r *expr.Result) error {
	if f.format == config.FormatText {
		_, err := fmt.Fprintln(w, f.Quantity(r.Value, r.Symbol))
		return err
	}
	return f.Encode(w, ResultRecord{
		Input:     r.Input,
		Value:     f.round(r.Value),
		Unit:      r.Symbol,
		Dimension: r.Dimension,
		SI:        Value(r.SI),
	})
}

// round applies the configured precision to machine-readable values.
func (f *Formatter) round(v float64) Value {
	if f.precision < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Value(v)
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', f.precision, 64), 64)
	if err != nil {
		return Value(v)
	}
	return Value(rounded)
}

// UnitRecord is the JSON form of a registered unit.
type UnitRecord struct {
	catalog.Definition `yaml:",inline"`
	Source             string `json:"source" yaml:"source"`
}

// Units writes a unit listing. Text output groups units under a heading per
// dimension; YAML output is a catalog document that can be loaded again.
func (f *Formatter) Units(w io.Writer, entries []*registry.UnitEntry) error {
	switch f.format {
	case config.FormatYAML:
		defs := make([]catalog.Definition, 0, len(entries))
		for _, e := range entries {
			defs = append(defs, catalog.FromUnit(e.Unit))
		}
		data, err := catalog.Marshal(defs)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatJSON:
		records := make([]UnitRecord, 0, len(entries))
		for _, e := range entries {
			records = append(records, UnitRecord{Definition: catalog.FromUnit(e.Unit), Source: e.Source})
		}
		return f.Encode(w, records)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	current := ""
	for i, e := range entries {
		if e.Dimension() != current {
			current = e.Dimension()
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintln(tw, f.Title(current))
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", e.Symbol(), e.Name(), f.definition(e.Unit), e.Source)
	}
	fmt.Fprintf(tw, "\nTotal: %d units\n", len(entries))
	return tw.Flush()
}

// definition describes how a unit maps onto SI.
func (f *Formatter) definition(u quantity.AnyUnit) string {
	def := catalog.FromUnit(u)
	info, _ := quantity.LookupDimension(u.Dimension())
	if def.IsAffine() {
		return fmt.Sprintf("(x - %s) × %s %s", f.Number(*def.Offset), f.Number(*def.Step), info.Symbol)
	}
	return f.Quantity(*def.Factor, info.Symbol)
}

// RelationRecord is the machine-readable form of a derivation.
type RelationRecord struct {
	Operation string `json:"operation" yaml:"operation"`
	Left      string `json:"left" yaml:"left"`
	Right     string `json:"right,omitempty" yaml:"right,omitempty"`
	Result    string `json:"result" yaml:"result"`
}

// Relations writes derivation relations.
func (f *Formatter) Relations(w io.Writer, relations []quantity.Relation) error {
	if f.format != config.FormatText {
		records := make([]RelationRecord, 0, len(relations))
		for _, r := range relations {
			records = append(records, RelationRecord{
				Operation: string(r.Op),
				Left:      r.Left,
				Right:     r.Right,
				Result:    r.Result,
			})
		}
		return f.Encode(w, records)
	}

	for _, r := range relations {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes v as JSON or YAML, matching the configured format.
func (f *Formatter) Encode(w io.Writer, v interface{}) error {
	if f.format == config.FormatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(v)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
