package quantity

import (
	"cmp"
	"math"
	"strconv"
)

// Quantity is a magnitude of dimension D, stored in the SI unit of D.
// The zero value is zero SI units. Quantities are immutable values; every
// method returns a new quantity.
type Quantity[D Dimension] struct {
	si float64
}

// Magnituder is the minimal capability needed by the dimension-erasing
// operations: anything exposing an SI magnitude.
type Magnituder interface {
	Float64() float64
}

// New returns v expressed in unit u, normalized to SI.
func New[D Dimension](v float64, u Unit[D]) Quantity[D] {
	return Quantity[D]{si: u.ToSI(v)}
}

// NewScalar is New with a Scalar magnitude.
func NewScalar[D Dimension](v Scalar, u Unit[D]) Quantity[D] {
	return Quantity[D]{si: u.ToSI(v.si)}
}

// FromSI returns a quantity whose SI magnitude is si.
func FromSI[D Dimension](si float64) Quantity[D] {
	return Quantity[D]{si: si}
}

// FromFloat64 is an alias of FromSI that reads better at conversion sites.
func FromFloat64[D Dimension](v float64) Quantity[D] {
	return Quantity[D]{si: v}
}

// FromScalar reinterprets a dimensionless magnitude as an SI magnitude of D.
func FromScalar[D Dimension](s Scalar) Quantity[D] {
	return Quantity[D]{si: s.si}
}

// Zero returns the zero quantity of D.
func Zero[D Dimension]() Quantity[D] {
	return Quantity[D]{}
}

// Float64 returns the SI magnitude.
func (q Quantity[D]) Float64() float64 { return q.si }

// Scalar returns the SI magnitude as a dimensionless quantity.
func (q Quantity[D]) Scalar() Scalar { return Scalar{si: q.si} }

// In returns the magnitude expressed in unit u.
func (q Quantity[D]) In(u Unit[D]) Scalar { return Scalar{si: u.FromSI(q.si)} }

// Dimension returns the name of D.
func (q Quantity[D]) Dimension() string { return nameOf[D]() }

// String formats the SI magnitude followed by the SI symbol, e.g. "5 [J]".
func (q Quantity[D]) String() string {
	s := strconv.FormatFloat(q.si, 'g', -1, 64)
	if sym := symbolOf[D](); sym != "" {
		s += " [" + sym + "]"
	}
	return s
}

func (q Quantity[D]) IsNaN() bool { return math.IsNaN(q.si) }

// IsZero reports whether the magnitude is exactly zero (either sign).
func (q Quantity[D]) IsZero() bool { return q.si == 0 }

// IsPositive reports whether the magnitude is greater than zero.
func (q Quantity[D]) IsPositive() bool { return q.si > 0 }

// IsNegative reports whether the sign bit is set, so -0 is negative.
func (q Quantity[D]) IsNegative() bool { return math.Signbit(q.si) }

func (q Quantity[D]) IsFinite() bool { return !math.IsNaN(q.si) && !math.IsInf(q.si, 0) }

func (q Quantity[D]) IsInfinite() bool { return math.IsInf(q.si, 0) }

func (q Quantity[D]) IsPositiveInfinity() bool { return math.IsInf(q.si, 1) }

func (q Quantity[D]) IsNegativeInfinity() bool { return math.IsInf(q.si, -1) }

func (q Quantity[D]) Abs() Quantity[D] { return Quantity[D]{si: math.Abs(q.si)} }

func (q Quantity[D]) Floor() Quantity[D] { return Quantity[D]{si: math.Floor(q.si)} }

func (q Quantity[D]) Ceil() Quantity[D] { return Quantity[D]{si: math.Ceil(q.si)} }

// Round rounds the SI magnitude half to even.
func (q Quantity[D]) Round() Quantity[D] { return Quantity[D]{si: math.RoundToEven(q.si)} }

// Plus returns q unchanged.
func (q Quantity[D]) Plus() Quantity[D] { return q }

func (q Quantity[D]) Negate() Quantity[D] { return Quantity[D]{si: -q.si} }

func (q Quantity[D]) Add(o Quantity[D]) Quantity[D] { return Quantity[D]{si: q.si + o.si} }

func (q Quantity[D]) Sub(o Quantity[D]) Quantity[D] { return Quantity[D]{si: q.si - o.si} }

// Mul scales q by f.
func (q Quantity[D]) Mul(f float64) Quantity[D] { return Quantity[D]{si: q.si * f} }

// MulScalar scales q by s.
func (q Quantity[D]) MulScalar(s Scalar) Quantity[D] { return Quantity[D]{si: q.si * s.si} }

// Div divides q by f.
func (q Quantity[D]) Div(f float64) Quantity[D] { return Quantity[D]{si: q.si / f} }

// DivScalar divides q by s.
func (q Quantity[D]) DivScalar(s Scalar) Quantity[D] { return Quantity[D]{si: q.si / s.si} }

// Rem returns the floating-point remainder of q/f. The result has the sign
// of q.
func (q Quantity[D]) Rem(f float64) Quantity[D] { return Quantity[D]{si: math.Mod(q.si, f)} }

// RemScalar is Rem with a Scalar divisor.
func (q Quantity[D]) RemScalar(s Scalar) Quantity[D] { return Quantity[D]{si: math.Mod(q.si, s.si)} }

// Ratio divides q by another quantity of the same dimension.
func (q Quantity[D]) Ratio(o Quantity[D]) Scalar { return Scalar{si: q.si / o.si} }

func (q Quantity[D]) Equal(o Quantity[D]) bool { return q.si == o.si }

func (q Quantity[D]) Less(o Quantity[D]) bool { return q.si < o.si }

func (q Quantity[D]) Greater(o Quantity[D]) bool { return q.si > o.si }

// LessOrEqual is !q.Greater(o); it is true when either magnitude is NaN.
func (q Quantity[D]) LessOrEqual(o Quantity[D]) bool { return !q.Greater(o) }

// GreaterOrEqual is !q.Less(o); it is true when either magnitude is NaN.
func (q Quantity[D]) GreaterOrEqual(o Quantity[D]) bool { return !q.Less(o) }

// Compare returns -1, 0 or +1 like cmp.Compare, ordering NaN first.
func (q Quantity[D]) Compare(o Quantity[D]) int { return cmp.Compare(q.si, o.si) }

// MultiplyUnhandled multiplies the magnitudes of q and f without any
// dimensional bookkeeping. f must be non-nil; use MultiplyWith for operands
// that may be missing.
func (q Quantity[D]) MultiplyUnhandled(f Magnituder) Unhandled {
	return Unhandled{si: q.si * f.Float64()}
}

// DivideUnhandled divides the magnitude of q by that of f without any
// dimensional bookkeeping. f must be non-nil; use DivideWith for operands
// that may be missing.
func (q Quantity[D]) DivideUnhandled(f Magnituder) Unhandled {
	return Unhandled{si: q.si / f.Float64()}
}

// Invert returns 1/q as an Unhandled quantity.
func (q Quantity[D]) Invert() Unhandled { return Unhandled{si: 1 / q.si} }

// Square returns q² as an Unhandled quantity.
func (q Quantity[D]) Square() Unhandled { return Unhandled{si: q.si * q.si} }

// Cube returns q³ as an Unhandled quantity.
func (q Quantity[D]) Cube() Unhandled { return Unhandled{si: q.si * q.si * q.si} }

// SquareRoot returns √q as an Unhandled quantity; negative magnitudes give NaN.
func (q Quantity[D]) SquareRoot() Unhandled { return Unhandled{si: math.Sqrt(q.si)} }

// CubeRoot returns the real, sign-preserving ∛q as an Unhandled quantity.
func (q Quantity[D]) CubeRoot() Unhandled { return Unhandled{si: math.Cbrt(q.si)} }
