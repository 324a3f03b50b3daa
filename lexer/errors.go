package lexer

import (
	"fmt"
	"unicode"
)

// Error is a lexical error and the span of source text it refers to.
type Error struct {
	Msg string
	Pos Span
}

// Errorf creates a new Error at the given span.
func Errorf(pos Span, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Error() string { return e.Msg }

// Message returns the error message without span context.
func (e *Error) Message() string { return e.Msg }

// Span returns the span of source the error refers to.
func (e *Error) Span() Span { return e.Pos }

// quoteChar renders a rune as a quoted character literal for use in
// diagnostic messages. Control and other non-printing characters use
// backslash escapes or \uNNNN form.
func quoteChar(r rune) string {
	switch r {
	case '\t':
		return `'\t'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\b':
		return `'\b'`
	case '\f':
		return `'\f'`
	case '\'':
		return `'\''`
	}
	if (r >= '!' && r <= '~') || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return "'" + string(r) + "'"
	}
	return fmt.Sprintf(`'\u%04x'`, r)
}
