package lexer

import (
	"math"
	"sort"
)

// Associativity determines how operators of equal precedence group.
type Associativity int

const (
	// AssocLeft operators group left to right: a - b - c is (a - b) - c.
	AssocLeft Associativity = iota
	// AssocRight operators group right to left: a ** b ** c is a ** (b ** c).
	AssocRight
)

// An Operator describes a binary operator: its spelling, its precedence
// relative to other operators, how it groups against operators of equal
// precedence, and the function applied during evaluation.
type Operator struct {
	Symbol        string
	Precedence    int
	Associativity Associativity
	Apply         func(lhs, rhs float64) float64
}

func (o *Operator) String() string { return o.Symbol }

// operators is the fixed table of binary operators. Symbols are unique and
// the table is never mutated after initialisation.
var operators = map[string]*Operator{
	"+":  {Symbol: "+", Precedence: 0, Associativity: AssocLeft, Apply: func(lhs, rhs float64) float64 { return lhs + rhs }},
	"-":  {Symbol: "-", Precedence: 0, Associativity: AssocLeft, Apply: func(lhs, rhs float64) float64 { return lhs - rhs }},
	"*":  {Symbol: "*", Precedence: 1, Associativity: AssocLeft, Apply: func(lhs, rhs float64) float64 { return lhs * rhs }},
	"/":  {Symbol: "/", Precedence: 1, Associativity: AssocLeft, Apply: func(lhs, rhs float64) float64 { return lhs / rhs }},
	"%":  {Symbol: "%", Precedence: 1, Associativity: AssocLeft, Apply: math.Mod},
	"**": {Symbol: "**", Precedence: 2, Associativity: AssocRight, Apply: math.Pow},
}

// Lookup returns the Operator registered for symbol.
func Lookup(symbol string) (*Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// Operators returns all registered operators, ordered by symbol.
func Operators() []*Operator {
	out := make([]*Operator, 0, len(operators))
	for _, op := range operators {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
