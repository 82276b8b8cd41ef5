// Package expr parses and evaluates quantity expressions such as
//
//	3 J + 2 kJ in kJ
//	100 km / 2 h in mi/h
//	sqrt(16 m²)
//	20 °C + 5 Δ°C in °F
//
// Units are written by symbol or name after a number, or on their own for
// one of that unit. Symbols the lexer cannot take apart, such as m/s², can
// be bracketed: 9.81 [m/s²]. A trailing "in" converts the result; since
// "in" is also the inch, "3 in in mm" reads as three inches in millimeters.
package expr

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Bracket", Pattern: `\[[^\]]+\]`},
	{Name: "Ident", Pattern: `[\p{L}_°%][\p{L}\p{N}_°%·']*`},
	{Name: "Punct", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Expression is a full input line.
type Expression struct {
	Pos lexer.Position

	Sum    *Sum    `parser:"@@"`
	Target *Target `parser:"( 'in' @@ )?"`
}

// Sum is a chain of additions and subtractions.
type Sum struct {
	Pos lexer.Position

	Head *Term    `parser:"@@"`
	Tail []*SumOp `parser:"@@*"`
}

type SumOp struct {
	Pos lexer.Position

	Op   string `parser:"@( '+' | '-' )"`
	Term *Term  `parser:"@@"`
}

// Term is a chain of multiplications and divisions.
type Term struct {
	Pos lexer.Position

	Head *Unary    `parser:"@@"`
	Tail []*TermOp `parser:"@@*"`
}

type TermOp struct {
	Pos lexer.Position

	Op    string `parser:"@( '*' | '/' )"`
	Unary *Unary `parser:"@@"`
}

type Unary struct {
	Pos lexer.Position

	Negated *Unary   `parser:"  '-' @@"`
	Primary *Primary `parser:"| @@"`
}

type Primary struct {
	Pos lexer.Position

	Literal *Literal `parser:"  @@"`
	Call    *Call    `parser:"| @@"`
	Group   *Sum     `parser:"| '(' @@ ')'"`
	Unit    *UnitRef `parser:"| @@"`
}

// Literal is a number with an optional unit.
type Literal struct {
	Pos lexer.Position

	Value float64  `parser:"@Number"`
	Unit  *UnitRef `parser:"@@?"`
}

// Call is a function application, or a bare unit name when Arg is nil.
type Call struct {
	Pos lexer.Position

	Name string `parser:"@Ident"`
	Arg  *Sum   `parser:"( '(' @@ ')' )?"`
}

type UnitRef struct {
	Pos lexer.Position

	Name string `parser:"@Ident | @Bracket"`
}

// Key returns the registry key, without brackets.
func (u *UnitRef) Key() string {
	return strings.TrimSuffix(strings.TrimPrefix(u.Name, "["), "]")
}

// Target is the unit after "in": a single unit or a product and quotient
// of units such as km/h.
type Target struct {
	Pos lexer.Position

	Head *UnitRef    `parser:"@@"`
	Tail []*TargetOp `parser:"@@*"`
}

type TargetOp struct {
	Op   string   `parser:"@( '*' | '/' )"`
	Unit *UnitRef `parser:"@@"`
}

// String renders the target the way it was written.
func (t *Target) String() string {
	var b strings.Builder
	b.WriteString(t.Head.Key())
	for _, op := range t.Tail {
		b.WriteString(op.Op)
		b.WriteString(op.Unit.Key())
	}
	return b.String()
}

var parser = participle.MustBuild[Expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses input without evaluating it.
func Parse(input string) (*Expression, error) {
	return parser.ParseString("", input)
}
