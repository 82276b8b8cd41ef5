package quantity

import "fmt"

// AnyUnit is the dimension-erased view of a unit, used where the dimension
// is only known at runtime (catalogs, registries, the expression evaluator).
type AnyUnit interface {
	Name() string
	Symbol() string
	// Dimension returns the name of the unit's dimension.
	Dimension() string
	// ToSI converts a magnitude expressed in this unit to SI.
	ToSI(v float64) float64
	// FromSI converts an SI magnitude to this unit.
	FromSI(si float64) float64
	// IsAffine reports whether the unit carries a zero-point offset.
	IsAffine() bool
}

// Unit is a unit of dimension D. It is implemented only by Linear and
// Affine.
type Unit[D Dimension] interface {
	AnyUnit
	dimension() D
}

// Linear is a unit related to SI by a pure scale factor.
type Linear[D Dimension] struct {
	name   string
	symbol string
	factor float64
}

// NewLinear returns a linear unit where one unit equals factor SI units.
// The factor is not validated.
func NewLinear[D Dimension](name, symbol string, factor float64) Linear[D] {
	return Linear[D]{name: name, symbol: symbol, factor: factor}
}

func (u Linear[D]) Name() string      { return u.name }
func (u Linear[D]) Symbol() string    { return u.symbol }
func (u Linear[D]) Dimension() string { return nameOf[D]() }
func (u Linear[D]) IsAffine() bool    { return false }
func (u Linear[D]) dimension() D      { return *new(D) }

// Factor returns the number of SI units in one of this unit.
func (u Linear[D]) Factor() float64 { return u.factor }

// ToSI returns v*factor.
func (u Linear[D]) ToSI(v float64) float64 { return v * u.factor }

// FromSI returns si/factor.
func (u Linear[D]) FromSI(si float64) float64 { return si / u.factor }

// Of returns v of this unit as a quantity.
func (u Linear[D]) Of(v float64) Quantity[D] { return Quantity[D]{si: u.ToSI(v)} }

func (u Linear[D]) String() string { return u.symbol }

// Affine is a unit of an absolute dimension whose zero point differs from
// the SI zero. Its scale is borrowed from a linear difference unit.
type Affine[D Absolute] struct {
	name   string
	symbol string
	offset float64
	step   float64
}

// NewAffine returns an affine unit whose scale is that of step and whose
// zero lies offset units away from the SI zero, so that
// ToSI(v) = (v-offset)*step.Factor().
func NewAffine[D Absolute, S Dimension](name, symbol string, offset float64, step Linear[S]) Affine[D] {
	return Affine[D]{name: name, symbol: symbol, offset: offset, step: step.factor}
}

func (u Affine[D]) Name() string      { return u.name }
func (u Affine[D]) Symbol() string    { return u.symbol }
func (u Affine[D]) Dimension() string { return nameOf[D]() }
func (u Affine[D]) IsAffine() bool    { return true }
func (u Affine[D]) dimension() D      { return *new(D) }

// Offset returns the zero-point bias in this unit.
func (u Affine[D]) Offset() float64 { return u.offset }

// Step returns the factor of the linked difference unit.
func (u Affine[D]) Step() float64 { return u.step }

// ToSI returns (v-offset)*step.
func (u Affine[D]) ToSI(v float64) float64 { return (v - u.offset) * u.step }

// FromSI returns si/step + offset.
func (u Affine[D]) FromSI(si float64) float64 { return si/u.step + u.offset }

// Of returns v of this unit as a quantity.
func (u Affine[D]) Of(v float64) Quantity[D] { return Quantity[D]{si: u.ToSI(v)} }

func (u Affine[D]) String() string { return u.symbol }

// NewLinearUnit builds a linear unit for the dimension named dimension.
func NewLinearUnit(dimension, name, symbol string, factor float64) (AnyUnit, error) {
	info, ok := LookupDimension(dimension)
	if !ok {
		return nil, invalidArgument("NewLinearUnit", "dimension",
			fmt.Sprintf("unknown dimension %q", dimension))
	}
	return info.linear(name, symbol, factor), nil
}

// NewAffineUnit builds an affine unit for the absolute dimension named
// dimension. step is the factor of the linked difference unit.
func NewAffineUnit(dimension, name, symbol string, offset, step float64) (AnyUnit, error) {
	info, ok := LookupDimension(dimension)
	if !ok {
		return nil, invalidArgument("NewAffineUnit", "dimension",
			fmt.Sprintf("unknown dimension %q", dimension))
	}
	if !info.Absolute {
		return nil, invalidArgument("NewAffineUnit", "dimension",
			fmt.Sprintf("dimension %q has no zero point", dimension))
	}
	return info.affine(name, symbol, offset, step), nil
}
