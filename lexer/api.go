package lexer

import "fmt"

// TokenType identifies the kind of a Token.
type TokenType int

// Token types produced by the Tokenizer.
const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenOperator
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
	TokenEquals
)

var tokenNames = map[TokenType]string{
	TokenEOF:      "EOF",
	TokenNumber:   "NUMBER",
	TokenIdent:    "IDENT",
	TokenOperator: "OPERATOR",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLet:      "LET",
	TokenIn:       "IN",
	TokenEquals:   "EQUALS",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// A Token returned by the Tokenizer.
type Token struct {
	Type TokenType
	// Value is the raw source text of the token.
	Value string
	// Number is the parsed value when Type is TokenNumber.
	Number float64
	// Op is the operator table entry when Type is TokenOperator.
	Op   *Operator
	Span Span
}

// EOF returns true if this Token marks the end of input.
func (t Token) EOF() bool {
	return t.Type == TokenEOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token@%s{%s, %q}", t.Span, t.Type, t.Value)
}
