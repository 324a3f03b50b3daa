package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// operatorChars is the set of characters an operator token may be built
// from. A run of these is matched maximally and then looked up in the
// operator table.
const operatorChars = `!#$%*+-/<=>?@\^|~`

// keywords maps identifier spellings to keyword token types.
var keywords = map[string]TokenType{
	"let": TokenLet,
	"in":  TokenIn,
}

// A Tokenizer lazily splits source text into Tokens. Tokens are produced
// one at a time by Next; nothing is scanned ahead of the returned token.
type Tokenizer struct {
	src string
	pos int
	err *Error
}

// New creates a Tokenizer for source.
func New(source string) *Tokenizer {
	return &Tokenizer{src: source}
}

// Next consumes and returns the next token. At end of input it returns a
// TokenEOF token forever. Once an error has been returned every subsequent
// call returns the same error and no further tokens.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	token, err := t.scan()
	if err != nil {
		t.err = err
		return Token{}, err
	}
	return token, nil
}

func (t *Tokenizer) scan() (Token, *Error) {
	t.skipWhitespace()
	if t.pos >= len(t.src) {
		return Token{Type: TokenEOF, Span: Span{Begin: t.pos}}, nil
	}
	switch c := t.src[t.pos]; {
	case c >= '0' && c <= '9':
		return t.scanNumber()
	case c == '(':
		t.pos++
		return Token{Type: TokenLParen, Value: "(", Span: Span{Begin: t.pos - 1, Length: 1}}, nil
	case c == ')':
		t.pos++
		return Token{Type: TokenRParen, Value: ")", Span: Span{Begin: t.pos - 1, Length: 1}}, nil
	case strings.IndexByte(operatorChars, c) >= 0:
		return t.scanOperator()
	}
	r, size := utf8.DecodeRuneInString(t.src[t.pos:])
	if unicode.IsLetter(r) {
		return t.scanIdent()
	}
	t.pos += size
	return Token{}, Errorf(Span{Begin: t.pos - size, Length: size}, "illegal start of token: %s", quoteChar(r))
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[t.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		t.pos += size
	}
}

func (t *Tokenizer) scanDigits() {
	for t.pos < len(t.src) && t.src[t.pos] >= '0' && t.src[t.pos] <= '9' {
		t.pos++
	}
}

func (t *Tokenizer) scanNumber() (Token, *Error) {
	begin := t.pos
	t.scanDigits()
	if t.pos < len(t.src) && t.src[t.pos] == '.' {
		t.pos++
		if t.pos >= len(t.src) {
			return Token{}, Errorf(Span{Begin: begin, Length: t.pos - begin}, "illegal end of input after decimal point")
		}
		if c := t.src[t.pos]; c < '0' || c > '9' {
			r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
			return Token{}, Errorf(Span{Begin: begin, Length: t.pos - begin}, "illegal character after decimal point: %s", quoteChar(r))
		}
		t.scanDigits()
	}
	value := t.src[begin:t.pos]
	// value is digits with at most one interior dot, so ParseFloat can only
	// fail on range overflow, which still yields ±Inf.
	number, _ := strconv.ParseFloat(value, 64)
	return Token{Type: TokenNumber, Value: value, Number: number, Span: Span{Begin: begin, Length: t.pos - begin}}, nil
}

func (t *Tokenizer) scanIdent() (Token, *Error) {
	begin := t.pos
	_, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size
	for t.pos < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[t.pos:])
		// '_' is neither a letter nor a digit, so it terminates the run.
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		t.pos += size
	}
	value := t.src[begin:t.pos]
	span := Span{Begin: begin, Length: t.pos - begin}
	if keyword, ok := keywords[value]; ok {
		return Token{Type: keyword, Value: value, Span: span}, nil
	}
	return Token{Type: TokenIdent, Value: value, Span: span}, nil
}

func (t *Tokenizer) scanOperator() (Token, *Error) {
	begin := t.pos
	for t.pos < len(t.src) && strings.IndexByte(operatorChars, t.src[t.pos]) >= 0 {
		t.pos++
	}
	value := t.src[begin:t.pos]
	span := Span{Begin: begin, Length: t.pos - begin}
	if value == "=" {
		return Token{Type: TokenEquals, Value: value, Span: span}, nil
	}
	op, ok := Lookup(value)
	if !ok {
		return Token{}, Errorf(span, "unknown binary operator: %s", value)
	}
	return Token{Type: TokenOperator, Value: value, Op: op, Span: span}, nil
}
