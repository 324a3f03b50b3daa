package infix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/infix/lexer"
)

// An Expr is a node in the tree produced by Parse. The tree is immutable
// once built; child nodes are owned exclusively by their parent.
type Expr interface {
	// Eval computes the value of the expression against vars.
	Eval(vars Vars) (float64, error)
	// String returns the structural rendering used for diagnostics: binary
	// applications appear in brackets, eg. "[1 + [2 * 3]]".
	String() string
	// Source returns the expression as parseable source text. Parsing the
	// result yields a structurally equal tree.
	Source() string
	exprNode()
}

// A Literal is a numeric literal.
type Literal struct {
	Value float64
}

// A Var references a variable by name.
type Var struct {
	Name string
}

// A Binop applies a binary operator to two operands.
type Binop struct {
	Op  *lexer.Operator
	LHS Expr
	RHS Expr
}

// A Call applies the named function to a single argument. Names are carried
// through the parse without validation.
type Call struct {
	Func string
	Arg  Expr
}

// A Paren records explicit grouping from the source.
type Paren struct {
	Inner Expr
}

// A Negate negates its operand.
type Negate struct {
	Inner Expr
}

// A Let binds Name to the value of Bound for the duration of Body.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

func (*Literal) exprNode() {}
func (*Var) exprNode()     {}
func (*Binop) exprNode()   {}
func (*Call) exprNode()    {}
func (*Paren) exprNode()   {}
func (*Negate) exprNode()  {}
func (*Let) exprNode()     {}

func (l *Literal) String() string { return strconv.FormatFloat(l.Value, 'g', -1, 64) }
func (v *Var) String() string     { return v.Name }
func (b *Binop) String() string   { return fmt.Sprintf("[%s %s %s]", b.LHS, b.Op.Symbol, b.RHS) }
func (c *Call) String() string    { return fmt.Sprintf("%s(%s)", c.Func, c.Arg) }
func (p *Paren) String() string   { return "(" + p.Inner.String() + ")" }
func (n *Negate) String() string  { return "-" + n.Inner.String() }
func (l *Let) String() string     { return fmt.Sprintf("let %s = %s in %s", l.Name, l.Bound, l.Body) }

// The tokenizer has no exponent syntax, so literals render in plain decimal
// rather than the %g form String uses. An overflow-saturated +Inf value has
// no source spelling and does not re-parse.
func (l *Literal) Source() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64)
}
func (v *Var) Source() string { return v.Name }
func (b *Binop) Source() string {
	return fmt.Sprintf("%s %s %s", b.LHS.Source(), b.Op.Symbol, b.RHS.Source())
}
func (c *Call) Source() string  { return fmt.Sprintf("%s(%s)", c.Func, c.Arg.Source()) }
func (p *Paren) Source() string { return "(" + p.Inner.Source() + ")" }
func (l *Let) Source() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Bound.Source(), l.Body.Source())
}

// Source separates a doubly negated operand with a space; "--" would
// otherwise lex as a single unknown operator.
func (n *Negate) Source() string {
	inner := n.Inner.Source()
	if strings.HasPrefix(inner, "-") {
		return "- " + inner
	}
	return "-" + inner
}
