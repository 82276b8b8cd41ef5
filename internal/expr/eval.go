package expr

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"

	qerrors "github.com/conneroisu/quant/internal/errors"
	"github.com/conneroisu/quant/internal/logging"
	"github.com/conneroisu/quant/internal/registry"
	"github.com/conneroisu/quant/pkg/quantity"
)

const (
	dimensionless = "dimensionless"
	unhandled     = "unhandled"
)

// Value is an intermediate result: an SI magnitude tagged with its
// dimension name.
type Value struct {
	SI        float64
	Dimension string
}

// Result is an evaluated expression expressed in a display unit.
type Result struct {
	Input     string
	Value     float64
	Symbol    string
	Unit      quantity.AnyUnit // nil for compound targets and unhandled results
	Dimension string
	SI        float64
}

// Evaluator evaluates expressions against a unit registry and the
// derivation graph.
type Evaluator struct {
	units  *registry.UnitRegistry
	graph  *quantity.Graph
	logger logging.Logger
}

// New creates an evaluator. A nil logger discards output.
func New(units *registry.UnitRegistry, logger logging.Logger) *Evaluator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Evaluator{
		units:  units,
		graph:  quantity.Derivations(),
		logger: logger.WithComponent("expr"),
	}
}

// Evaluate parses and evaluates input.
func (e *Evaluator) Evaluate(ctx context.Context, input string) (*Result, error) {
	ast, err := Parse(input)
	if err != nil {
		column := 0
		var perr participle.Error
		if errors.As(err, &perr) {
			column = perr.Position().Column
		}
		return nil, qerrors.ErrParse(input, column, err)
	}

	run := &evaluation{Evaluator: e, input: input}
	v, err := run.sum(ast.Sum)
	if err != nil {
		return nil, err
	}

	var res *Result
	if ast.Target != nil {
		res, err = run.convert(v, ast.Target)
		if err != nil {
			return nil, err
		}
	} else {
		res = e.display(v)
	}
	res.Input = input

	e.logger.Debug(ctx, "evaluated", "input", input, "dimension", res.Dimension, "si", res.SI)
	return res, nil
}

// Convert expresses value, given in unit from, in unit to.
func (e *Evaluator) Convert(value float64, from, to string) (*Result, error) {
	src, err := e.units.Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := e.units.Lookup(to)
	if err != nil {
		return nil, err
	}
	if src.Dimension() != dst.Dimension() {
		return nil, qerrors.NewEnhancedError(
			"incompatible units",
			qerrors.ErrDimensionMismatch("convert", src.Dimension(), dst.Dimension()),
			qerrors.DimensionMismatchSuggestions(src.Dimension(), dst.Dimension()),
		)
	}

	si := src.Unit.ToSI(value)
	return &Result{
		Input:     fmt.Sprintf("%g %s", value, from),
		Value:     dst.Unit.FromSI(si),
		Symbol:    symbolOf(dst.Unit),
		Unit:      dst.Unit,
		Dimension: dst.Dimension(),
		SI:        si,
	}, nil
}

// display picks the first registered unit of the dimension, which for
// built-in dimensions is the SI unit.
func (e *Evaluator) display(v Value) *Result {
	res := &Result{Value: v.SI, SI: v.SI, Dimension: v.Dimension}
	if units := e.units.ByDimension(v.Dimension); len(units) > 0 {
		res.Unit = units[0].Unit
		res.Value = res.Unit.FromSI(v.SI)
		res.Symbol = symbolOf(res.Unit)
		return res
	}
	if info, ok := quantity.LookupDimension(v.Dimension); ok {
		res.Symbol = info.Symbol
	} else if v.Dimension == unhandled {
		res.Symbol = "?"
	}
	return res
}

func symbolOf(u quantity.AnyUnit) string {
	if s := u.Symbol(); s != "" || u.Dimension() == dimensionless {
		return s
	}
	return u.Name()
}

// evaluation carries the input for error positions.
type evaluation struct {
	*Evaluator
	input string
}

func (ev *evaluation) locate(err error, column int) error {
	var qe *qerrors.QuantError
	if errors.As(err, &qe) && qe.Expression == "" {
		qe.WithExpression(ev.input, column)
	}
	return err
}

func (ev *evaluation) sum(s *Sum) (Value, error) {
	acc, err := ev.term(s.Head)
	if err != nil {
		return Value{}, err
	}
	for _, op := range s.Tail {
		rhs, err := ev.term(op.Term)
		if err != nil {
			return Value{}, err
		}
		acc, err = ev.additive(op.Op, acc, rhs)
		if err != nil {
			return Value{}, ev.locate(err, op.Pos.Column)
		}
	}
	return acc, nil
}

// additive adds or subtracts. Named relations come first, so temperature
// minus temperature is a temperature difference. Otherwise both operands
// must share a dimension that is neither absolute nor unhandled.
func (ev *evaluation) additive(op string, a, b Value) (Value, error) {
	graphOp, verb := quantity.OpSum, "add"
	if op == "-" {
		graphOp, verb = quantity.OpDifference, "subtract"
	}

	if r, ok := ev.graph.Lookup(graphOp, a.Dimension, b.Dimension); ok {
		return Value{SI: r.Apply(a.SI, b.SI), Dimension: r.Result}, nil
	}
	if a.Dimension == b.Dimension && a.Dimension != unhandled && !absolute(a.Dimension) {
		return Value{SI: (quantity.Relation{Op: graphOp}).Apply(a.SI, b.SI), Dimension: a.Dimension}, nil
	}

	return Value{}, qerrors.NewEnhancedError(
		"dimension mismatch",
		qerrors.ErrDimensionMismatch(verb, a.Dimension, b.Dimension),
		qerrors.DimensionMismatchSuggestions(a.Dimension, b.Dimension),
	)
}

func absolute(dimension string) bool {
	info, ok := quantity.LookupDimension(dimension)
	return ok && info.Absolute
}

func (ev *evaluation) term(t *Term) (Value, error) {
	acc, err := ev.unary(t.Head)
	if err != nil {
		return Value{}, err
	}
	for _, op := range t.Tail {
		rhs, err := ev.unary(op.Unary)
		if err != nil {
			return Value{}, err
		}
		if op.Op == "*" {
			acc = ev.product(acc, rhs)
		} else {
			acc = ev.quotient(acc, rhs)
		}
	}
	return acc, nil
}

// product scales by dimensionless values and otherwise follows the graph,
// falling back to unhandled.
func (ev *evaluation) product(a, b Value) Value {
	si := a.SI * b.SI
	switch {
	case b.Dimension == dimensionless:
		return Value{SI: si, Dimension: a.Dimension}
	case a.Dimension == dimensionless:
		return Value{SI: si, Dimension: b.Dimension}
	}
	if r, ok := ev.graph.Product(a.Dimension, b.Dimension); ok {
		return Value{SI: r.Apply(a.SI, b.SI), Dimension: r.Result}
	}
	return Value{SI: si, Dimension: unhandled}
}

// quotient of like dimensions is a ratio; a dimensionless numerator uses
// the inverse relation.
func (ev *evaluation) quotient(a, b Value) Value {
	si := a.SI / b.SI
	switch {
	case b.Dimension == dimensionless:
		return Value{SI: si, Dimension: a.Dimension}
	case a.Dimension == b.Dimension && a.Dimension != unhandled:
		return Value{SI: si, Dimension: dimensionless}
	}
	if r, ok := ev.graph.Quotient(a.Dimension, b.Dimension); ok {
		return Value{SI: r.Apply(a.SI, b.SI), Dimension: r.Result}
	}
	if a.Dimension == dimensionless {
		if r, ok := ev.graph.Unary(quantity.OpInverse, b.Dimension); ok {
			return Value{SI: si, Dimension: r.Result}
		}
	}
	return Value{SI: si, Dimension: unhandled}
}

// unary applies leading minus signs. On a literal with a unit the sign is
// part of the reading, so -20 °C converts -20 rather than negating 293.15 K.
func (ev *evaluation) unary(u *Unary) (Value, error) {
	if u.Negated == nil {
		return ev.primary(u.Primary)
	}

	sign, inner := -1.0, u.Negated
	for inner.Negated != nil {
		sign, inner = -sign, inner.Negated
	}
	if lit := inner.Primary.Literal; lit != nil && lit.Unit != nil {
		return ev.measure(sign*lit.Value, lit.Unit)
	}

	v, err := ev.primary(inner.Primary)
	if err != nil {
		return Value{}, err
	}
	return Value{SI: sign * v.SI, Dimension: v.Dimension}, nil
}

func (ev *evaluation) primary(p *Primary) (Value, error) {
	switch {
	case p.Literal != nil:
		if p.Literal.Unit == nil {
			return Value{SI: p.Literal.Value, Dimension: dimensionless}, nil
		}
		return ev.measure(p.Literal.Value, p.Literal.Unit)
	case p.Call != nil:
		if p.Call.Arg == nil {
			return ev.measure(1, &UnitRef{Pos: p.Call.Pos, Name: p.Call.Name})
		}
		arg, err := ev.sum(p.Call.Arg)
		if err != nil {
			return Value{}, err
		}
		v, err := ev.call(p.Call.Name, arg)
		return v, ev.locate(err, p.Call.Pos.Column)
	case p.Group != nil:
		return ev.sum(p.Group)
	case p.Unit != nil:
		return ev.measure(1, p.Unit)
	}
	return Value{}, qerrors.NewInternalError(qerrors.ErrCodeInternalError, "empty expression node", nil)
}

func (ev *evaluation) measure(n float64, ref *UnitRef) (Value, error) {
	entry, err := ev.units.Lookup(ref.Key())
	if err != nil {
		return Value{}, ev.locate(err, ref.Pos.Column)
	}
	return Value{SI: entry.Unit.ToSI(n), Dimension: entry.Dimension()}, nil
}

var functions = map[string]quantity.Operation{
	"sqrt": quantity.OpSquareRoot,
	"cbrt": quantity.OpCubeRoot,
	"inv":  quantity.OpInverse,
	"sq":   quantity.OpSquare,
	"cube": quantity.OpCube,
}

func (ev *evaluation) call(name string, arg Value) (Value, error) {
	op, ok := functions[name]
	if !ok {
		return Value{}, qerrors.NewValidationError(qerrors.ErrCodeParse, "unknown function: "+name).
			WithContext("function", name)
	}

	si := (quantity.Relation{Op: op}).Apply(arg.SI, 0)
	if arg.Dimension == dimensionless {
		return Value{SI: si, Dimension: dimensionless}, nil
	}
	if r, ok := ev.graph.Unary(op, arg.Dimension); ok {
		return Value{SI: r.Apply(arg.SI, 0), Dimension: r.Result}, nil
	}
	return Value{SI: si, Dimension: unhandled}, nil
}

// convert expresses v in the target. A single unit converts through the unit
// itself, so offset scales work; compound targets must be linear.
func (ev *evaluation) convert(v Value, target *Target) (*Result, error) {
	head, err := ev.units.Lookup(target.Head.Key())
	if err != nil {
		return nil, ev.locate(err, target.Head.Pos.Column)
	}

	if len(target.Tail) == 0 {
		if err := ev.sameDimension(v.Dimension, head.Dimension(), target.Pos.Column); err != nil {
			return nil, err
		}
		return &Result{
			Value:     head.Unit.FromSI(v.SI),
			Symbol:    symbolOf(head.Unit),
			Unit:      head.Unit,
			Dimension: v.Dimension,
			SI:        v.SI,
		}, nil
	}

	scale := Value{SI: head.Unit.ToSI(1), Dimension: head.Dimension()}
	if head.Unit.IsAffine() {
		return nil, ev.affineInCompound(head.Name(), target)
	}
	for _, op := range target.Tail {
		entry, err := ev.units.Lookup(op.Unit.Key())
		if err != nil {
			return nil, ev.locate(err, op.Unit.Pos.Column)
		}
		if entry.Unit.IsAffine() {
			return nil, ev.affineInCompound(entry.Name(), target)
		}
		rhs := Value{SI: entry.Unit.ToSI(1), Dimension: entry.Dimension()}
		if op.Op == "*" {
			scale = ev.product(scale, rhs)
		} else {
			scale = ev.quotient(scale, rhs)
		}
	}

	if err := ev.sameDimension(v.Dimension, scale.Dimension, target.Pos.Column); err != nil {
		return nil, err
	}
	return &Result{
		Value:     v.SI / scale.SI,
		Symbol:    target.String(),
		Dimension: v.Dimension,
		SI:        v.SI,
	}, nil
}

func (ev *evaluation) sameDimension(have, want string, column int) error {
	if have == want && have != unhandled {
		return nil
	}
	return ev.locate(qerrors.NewEnhancedError(
		"cannot convert",
		qerrors.ErrDimensionMismatch("convert", have, want),
		qerrors.DimensionMismatchSuggestions(have, want),
	), column)
}

func (ev *evaluation) affineInCompound(name string, target *Target) error {
	return ev.locate(qerrors.NewValidationError(qerrors.ErrCodeDimensionMismatch,
		fmt.Sprintf("unit %s has an offset and cannot be part of %s", name, target)),
		target.Pos.Column)
}

// IsUnhandled reports whether r has no named dimension.
func (r *Result) IsUnhandled() bool { return r.Dimension == unhandled }

// IsNaN reports whether the value is not a number.
func (r *Result) IsNaN() bool { return math.IsNaN(r.SI) }
