// Package quantity provides dimension-safe physical quantities.
//
// Every quantity is a Quantity[D] where D is a zero-size dimension tag such
// as EnergyDim or TimeDim. The magnitude is always stored in the SI unit of
// the dimension, and the tag makes mixing dimensions a compile-time error:
//
//	e := quantity.New(3, quantity.Joule).Add(quantity.New(2, quantity.Kilojoule))
//	fmt.Println(e)                        // 2003 [J]
//	fmt.Println(e.In(quantity.Kilojoule)) // 2.003
//
//	t := quantity.New(2, quantity.Second)
//	e.Add(t) // does not compile
//
// # Units
//
// Units come in two variants behind the sealed Unit[D] interface. Linear
// units relate to SI by a scale factor. Affine units carry an additional
// zero-point offset and can only be built for Absolute dimensions
// (Temperature), never for their linear counterpart (TemperatureDifference).
//
// # Derivations
//
// Cross-dimension arithmetic goes through explicitly named functions such
// as VelocityFromLengthTime or FrequencyFromTime. Combinations without a
// named relation use MultiplyUnhandled and DivideUnhandled, which keep the
// numeric product but erase the dimension into Unhandled. MultiplyWith and
// DivideWith let callers wire their own relations by supplying the result
// constructor.
//
// The same relations are available at runtime through Derivations, which
// the expression evaluator of the quant command uses to type products of
// dynamically parsed quantities.
//
// # Numeric semantics
//
// Magnitudes are IEEE-754 float64 values. Division by zero, square roots of
// negative magnitudes and similar operations yield NaN or ±Inf instead of
// errors. LessOrEqual and GreaterOrEqual are defined as the negation of the
// opposite strict comparison for every quantity type, so both report true
// when either operand is NaN.
//
// All values, unit tables and the derivation graph are immutable after
// package initialization and safe for concurrent use.
package quantity
