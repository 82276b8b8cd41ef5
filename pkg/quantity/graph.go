package quantity

import (
	"fmt"
	"math"
)

// Operation is an edge kind of the derivation graph.
type Operation string

const (
	OpProduct    Operation = "*"
	OpQuotient   Operation = "/"
	OpSum        Operation = "+"
	OpDifference Operation = "-"
	OpInverse    Operation = "inv"
	OpSquare     Operation = "sq"
	OpSquareRoot Operation = "sqrt"
	OpCube       Operation = "cube"
	OpCubeRoot   Operation = "cbrt"
)

// IsUnary reports whether the operation takes a single operand.
func (op Operation) IsUnary() bool {
	switch op {
	case OpInverse, OpSquare, OpSquareRoot, OpCube, OpCubeRoot:
		return true
	}
	return false
}

// Relation is one named identity between dimensions. Unary relations leave
// Right empty.
type Relation struct {
	Op     Operation
	Left   string
	Right  string
	Result string
}

// Apply computes the SI magnitude of the result from SI operands. b is
// ignored by unary relations.
func (r Relation) Apply(a, b float64) float64 {
	switch r.Op {
	case OpProduct:
		return a * b
	case OpQuotient:
		return a / b
	case OpSum:
		return a + b
	case OpDifference:
		return a - b
	case OpInverse:
		return 1 / a
	case OpSquare:
		return a * a
	case OpSquareRoot:
		return math.Sqrt(a)
	case OpCube:
		return a * a * a
	case OpCubeRoot:
		return math.Cbrt(a)
	}
	return math.NaN()
}

func (r Relation) String() string {
	if r.Op.IsUnary() {
		return fmt.Sprintf("%s(%s) = %s", r.Op, r.Left, r.Result)
	}
	return fmt.Sprintf("%s %s %s = %s", r.Left, r.Op, r.Right, r.Result)
}

type relationKey struct {
	op    Operation
	left  string
	right string
}

// Graph indexes relations by operation and operand dimensions. A Graph is
// immutable once built.
type Graph struct {
	relations []Relation
	index     map[relationKey]Relation
}

// NewGraph indexes the given relation groups. It panics when two relations
// share operands and operation but disagree on the result.
func NewGraph(groups ...[]Relation) *Graph {
	g := &Graph{index: make(map[relationKey]Relation)}
	for _, group := range groups {
		for _, r := range group {
			key := relationKey{op: r.Op, left: r.Left, right: r.Right}
			if prev, ok := g.index[key]; ok {
				if prev.Result != r.Result {
					panic(fmt.Sprintf("quantity: conflicting relations %q and %q", prev, r))
				}
				continue
			}
			g.index[key] = r
			g.relations = append(g.relations, r)
		}
	}
	return g
}

// Lookup finds the relation for a binary operation.
func (g *Graph) Lookup(op Operation, left, right string) (Relation, bool) {
	r, ok := g.index[relationKey{op: op, left: left, right: right}]
	return r, ok
}

// Product finds the relation for left * right.
func (g *Graph) Product(left, right string) (Relation, bool) {
	return g.Lookup(OpProduct, left, right)
}

// Quotient finds the relation for left / right.
func (g *Graph) Quotient(left, right string) (Relation, bool) {
	return g.Lookup(OpQuotient, left, right)
}

// Unary finds the relation for op applied to operand.
func (g *Graph) Unary(op Operation, operand string) (Relation, bool) {
	return g.Lookup(op, operand, "")
}

// Relations returns every relation in registration order.
func (g *Graph) Relations() []Relation {
	out := make([]Relation, len(g.relations))
	copy(out, g.relations)
	return out
}

// Len returns the number of relations.
func (g *Graph) Len() int { return len(g.relations) }

// Derivations returns the graph of built-in relations. It mirrors the named
// functions of this package.
func Derivations() *Graph { return derivations }

func binary[A, B, R Dimension](op Operation) []Relation {
	return []Relation{{Op: op, Left: nameOf[A](), Right: nameOf[B](), Result: nameOf[R]()}}
}

func unary[A, R Dimension](op Operation) []Relation {
	return []Relation{{Op: op, Left: nameOf[A](), Result: nameOf[R]()}}
}

// commutes registers A*B and B*A.
func commutes[A, B, R Dimension]() []Relation {
	return append(binary[A, B, R](OpProduct), binary[B, A, R](OpProduct)...)
}

func divides[A, B, R Dimension]() []Relation {
	return binary[A, B, R](OpQuotient)
}

var derivations = NewGraph(
	unary[TimeDim, FrequencyDim](OpInverse),
	unary[FrequencyDim, TimeDim](OpInverse),

	unary[FrequencyDim, FrequencyDriftDim](OpSquare),
	unary[FrequencyDriftDim, FrequencyDim](OpSquareRoot),
	unary[LengthDim, AreaDim](OpSquare),
	unary[AreaDim, LengthDim](OpSquareRoot),
	unary[LengthDim, VolumeDim](OpCube),
	unary[VolumeDim, LengthDim](OpCubeRoot),

	binary[LengthDim, LengthDim, AreaDim](OpProduct),
	binary[FrequencyDim, FrequencyDim, FrequencyDriftDim](OpProduct),
	commutes[AreaDim, LengthDim, VolumeDim](),
	divides[AreaDim, LengthDim, LengthDim](),
	divides[VolumeDim, AreaDim, LengthDim](),
	divides[VolumeDim, LengthDim, AreaDim](),

	divides[LengthDim, TimeDim, VelocityDim](),
	divides[LengthDim, VelocityDim, TimeDim](),
	commutes[VelocityDim, TimeDim, LengthDim](),
	commutes[LengthDim, FrequencyDim, VelocityDim](),
	divides[VelocityDim, LengthDim, FrequencyDim](),
	divides[FrequencyDriftDim, FrequencyDim, FrequencyDim](),
	commutes[FrequencyDriftDim, TimeDim, FrequencyDim](),
	divides[FrequencyDim, TimeDim, FrequencyDriftDim](),

	divides[VelocityDim, TimeDim, AccelerationDim](),
	divides[VelocityDim, AccelerationDim, TimeDim](),
	commutes[AccelerationDim, TimeDim, VelocityDim](),

	commutes[MassDim, AccelerationDim, ForceDim](),
	divides[ForceDim, MassDim, AccelerationDim](),
	divides[ForceDim, AccelerationDim, MassDim](),

	commutes[MassDim, VelocityDim, MomentumDim](),
	divides[MomentumDim, MassDim, VelocityDim](),
	divides[MomentumDim, VelocityDim, MassDim](),
	divides[MomentumDim, TimeDim, ForceDim](),
	commutes[ForceDim, TimeDim, MomentumDim](),

	commutes[ForceDim, LengthDim, EnergyDim](),
	divides[EnergyDim, LengthDim, ForceDim](),
	divides[EnergyDim, ForceDim, LengthDim](),

	divides[EnergyDim, TimeDim, PowerDim](),
	divides[EnergyDim, PowerDim, TimeDim](),
	commutes[PowerDim, TimeDim, EnergyDim](),
	commutes[ForceDim, VelocityDim, PowerDim](),

	divides[ForceDim, AreaDim, PressureDim](),
	divides[ForceDim, PressureDim, AreaDim](),
	commutes[PressureDim, AreaDim, ForceDim](),
	commutes[PressureDim, VolumeDim, EnergyDim](),

	divides[MassDim, VolumeDim, DensityDim](),
	divides[MassDim, DensityDim, VolumeDim](),
	commutes[DensityDim, VolumeDim, MassDim](),

	divides[AngleDim, TimeDim, AngularVelocityDim](),
	divides[AngleDim, AngularVelocityDim, TimeDim](),
	commutes[AngularVelocityDim, TimeDim, AngleDim](),

	commutes[ElectricCurrentDim, TimeDim, ElectricChargeDim](),
	divides[ElectricChargeDim, TimeDim, ElectricCurrentDim](),
	divides[ElectricChargeDim, ElectricCurrentDim, TimeDim](),
	commutes[VoltageDim, ElectricCurrentDim, PowerDim](),
	divides[PowerDim, ElectricCurrentDim, VoltageDim](),
	divides[PowerDim, VoltageDim, ElectricCurrentDim](),
	commutes[ElectricChargeDim, VoltageDim, EnergyDim](),
	divides[EnergyDim, ElectricChargeDim, VoltageDim](),
	divides[EnergyDim, VoltageDim, ElectricChargeDim](),

	binary[TemperatureDim, TemperatureDifferenceDim, TemperatureDim](OpSum),
	binary[TemperatureDifferenceDim, TemperatureDim, TemperatureDim](OpSum),
	binary[TemperatureDim, TemperatureDifferenceDim, TemperatureDim](OpDifference),
	binary[TemperatureDim, TemperatureDim, TemperatureDifferenceDim](OpDifference),
)
