package infix

import (
	"fmt"
	"io"

	"github.com/alecthomas/infix/lexer"
)

// unaryPrecedence is the minimum precedence used to parse the operand of a
// unary + or -. It must exceed every Precedence in the operator table so
// that a unary operand never extends into an infix expression.
const unaryPrecedence = 3

type parser struct {
	lex     *lexer.Tokenizer
	current lexer.Token
	trace   io.Writer
	depth   int
}

func newParser(source string, options ...Option) (*parser, error) {
	p := &parser{lex: lexer.New(source)}
	for _, option := range options {
		option(p)
	}
	if err := p.bump(); err != nil {
		return nil, err
	}
	return p, nil
}

// bump replaces the lookahead token with the next token from the lexer.
func (p *parser) bump() error {
	token, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.current = token
	return nil
}

// expect consumes and returns the lookahead token if it has type tt, and
// fails with a syntax error otherwise.
func (p *parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	token := p.current
	if token.Type != tt {
		got := token.Type.String()
		if token.EOF() {
			got = "eof"
		}
		return token, Errorf(token.Span, "expected %s, got %s", tt, got)
	}
	if err := p.bump(); err != nil {
		return token, err
	}
	return token, nil
}

func (p *parser) parse() (Expr, error) {
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if !p.current.EOF() {
		return nil, Errorf(p.current.Span, "unexpected token %s, expected eof", p.current.Type)
	}
	return e, nil
}

// parseExpr parses one expression by precedence climbing: a prefix operand
// followed by every infix operator of precedence at least minPrec.
func (p *parser) parseExpr(minPrec int) (Expr, error) {
	t := p.current
	if t.EOF() {
		return nil, Errorf(t.Span, "illegal eof")
	}
	if p.trace != nil {
		fmt.Fprintf(p.trace, "%*s%s min=%d\n", p.depth*2, "", t, minPrec)
		p.depth++
		defer func() { p.depth-- }()
	}
	if err := p.bump(); err != nil {
		return nil, err
	}

	var e Expr
	switch t.Type {
	case lexer.TokenNumber:
		e = &Literal{Value: t.Number}

	case lexer.TokenIdent:
		if p.current.Type == lexer.TokenLParen {
			if err := p.bump(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokenRParen); err != nil {
				return nil, err
			}
			e = &Call{Func: t.Value, Arg: arg}
		} else {
			e = &Var{Name: t.Value}
		}

	case lexer.TokenLParen:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		e = &Paren{Inner: inner}

	case lexer.TokenOperator:
		switch t.Op.Symbol {
		case "+":
			// Unary plus contributes no node.
			inner, err := p.parseExpr(unaryPrecedence)
			if err != nil {
				return nil, err
			}
			e = inner
		case "-":
			inner, err := p.parseExpr(unaryPrecedence)
			if err != nil {
				return nil, err
			}
			e = &Negate{Inner: inner}
		default:
			return nil, Errorf(t.Span, "unexpected binary operator: %s", t.Op.Symbol)
		}

	case lexer.TokenLet:
		name, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenEquals); err != nil {
			return nil, err
		}
		bound, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenIn); err != nil {
			return nil, err
		}
		body, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		e = &Let{Name: name.Value, Bound: bound, Body: body}

	default:
		return nil, Errorf(t.Span, "unexpected token: %s", t.Type)
	}

	for p.current.Type == lexer.TokenOperator && p.current.Op.Precedence >= minPrec {
		op := p.current.Op
		if err := p.bump(); err != nil {
			return nil, err
		}
		// Left-associative operators refuse equal precedence on the right,
		// so a - b - c groups as (a - b) - c.
		rhsMin := op.Precedence
		if op.Associativity == lexer.AssocLeft {
			rhsMin++
		}
		rhs, err := p.parseExpr(rhsMin)
		if err != nil {
			return nil, err
		}
		e = &Binop{Op: op, LHS: e, RHS: rhs}
	}
	return e, nil
}
