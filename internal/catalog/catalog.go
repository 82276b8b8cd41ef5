// Package catalog reads and writes YAML unit catalogs.
//
// A catalog lists extra units:
//
//	units:
//	  - name: furlong
//	    symbol: fur
//	    dimension: length
//	    factor: 201.168
//	  - name: chain
//	    symbol: ch
//	    dimension: length
//	    factor: 0.1
//	    base: furlong
//	  - name: reaumur
//	    symbol: °Ré
//	    dimension: temperature
//	    offset: -218.52
//	    step: 1.25
//
// factor is the size of one unit in SI units, or in base units when base is
// set. Affine units (offset and step) are only allowed for dimensions with an
// absolute zero.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/pkg/quantity"
)

// File is the document layout of a catalog.
type File struct {
	Units []Definition `json:"units" yaml:"units"`
}

// Definition is one catalog entry.
type Definition struct {
	Name      string   `json:"name" yaml:"name"`
	Symbol    string   `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Dimension string   `json:"dimension" yaml:"dimension"`
	Factor    *float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
	Base      string   `json:"base,omitempty" yaml:"base,omitempty"`
	Offset    *float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Step      *float64 `json:"step,omitempty" yaml:"step,omitempty"`

	// Line is the line of the entry in its source document.
	Line int `json:"-" yaml:"-"`
}

// IsAffine reports whether the entry describes an offset scale.
func (d Definition) IsAffine() bool {
	return d.Offset != nil || d.Step != nil
}

// Parse decodes a catalog document. Each definition keeps the line it was
// declared on so later problems can point back to it.
func Parse(r io.Reader, path string) ([]Definition, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, qerrors.ErrCatalogInvalid(path, 0, "malformed YAML").
			WithContext("cause", err.Error())
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, qerrors.ErrCatalogInvalid(path, root.Line, "catalog must be a mapping with a units list")
	}

	var units *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "units" {
			units = root.Content[i+1]
		}
	}
	if units == nil || units.Tag == "!!null" {
		return nil, nil
	}
	if units.Kind != yaml.SequenceNode {
		return nil, qerrors.ErrCatalogInvalid(path, units.Line, "units must be a list")
	}

	defs := make([]Definition, 0, len(units.Content))
	for _, item := range units.Content {
		var def Definition
		if err := item.Decode(&def); err != nil {
			return nil, qerrors.ErrCatalogInvalid(path, item.Line, "invalid unit entry").
				WithContext("cause", err.Error())
		}
		def.Line = item.Line
		defs = append(defs, def)
	}
	return defs, nil
}

// Resolver finds an already known unit by name or symbol.
type Resolver func(key string) (quantity.AnyUnit, bool)

// Build turns a definition into a unit. resolve is consulted for base units
// and may be nil when no definition uses one.
func Build(def Definition, resolve Resolver) (quantity.AnyUnit, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if def.Dimension == "" {
		return nil, fmt.Errorf("dimension is required")
	}
	if _, ok := quantity.LookupDimension(def.Dimension); !ok {
		return nil, qerrors.ErrUnknownDimension(def.Dimension)
	}

	if def.IsAffine() {
		if def.Factor != nil || def.Base != "" {
			return nil, fmt.Errorf("factor and base cannot be combined with offset and step")
		}
		offset, step := 0.0, 1.0
		if def.Offset != nil {
			offset = *def.Offset
		}
		if def.Step != nil {
			step = *def.Step
		}
		if !usable(step) || !finite(offset) {
			return nil, fmt.Errorf("step must be finite and non-zero, offset finite")
		}
		return quantity.NewAffineUnit(def.Dimension, def.Name, def.Symbol, offset, step)
	}

	if def.Factor == nil {
		return nil, fmt.Errorf("factor is required")
	}
	factor := *def.Factor
	if !usable(factor) {
		return nil, fmt.Errorf("factor must be finite and non-zero")
	}

	if def.Base != "" {
		if resolve == nil {
			return nil, fmt.Errorf("base unit %q cannot be resolved", def.Base)
		}
		base, ok := resolve(def.Base)
		if !ok {
			return nil, qerrors.ErrUnknownUnit(def.Base)
		}
		if base.Dimension() != def.Dimension {
			return nil, qerrors.ErrDimensionMismatch("base", def.Dimension, base.Dimension())
		}
		if base.IsAffine() {
			return nil, fmt.Errorf("base unit %q has an offset", def.Base)
		}
		factor *= base.ToSI(1)
	}

	return quantity.NewLinearUnit(def.Dimension, def.Name, def.Symbol, factor)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func usable(v float64) bool { return finite(v) && v != 0 }

// FromUnit describes an existing unit as a catalog entry.
func FromUnit(u quantity.AnyUnit) Definition {
	def := Definition{Name: u.Name(), Symbol: u.Symbol(), Dimension: u.Dimension()}

	if a, ok := u.(interface {
		Offset() float64
		Step() float64
	}); ok {
		offset, step := a.Offset(), a.Step()
		def.Offset, def.Step = &offset, &step
		return def
	}

	var factor float64
	if l, ok := u.(interface{ Factor() float64 }); ok {
		factor = l.Factor()
	} else {
		factor = u.ToSI(1)
	}
	def.Factor = &factor
	return def
}

// Marshal renders definitions as a catalog document.
func Marshal(defs []Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(File{Units: defs}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
