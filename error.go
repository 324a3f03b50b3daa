package infix

import (
	"fmt"

	"github.com/alecthomas/infix/lexer"
)

// Error is implemented by every error reported against source text.
//
// Both *lexer.Error and *SyntaxError implement it.
type Error interface {
	error
	// Message returns the error message without span context.
	Message() string
	// Span returns the span of source the error refers to.
	Span() lexer.Span
}

// SyntaxError is returned by Parse when a well-formed token stream does not
// form a valid expression.
type SyntaxError struct {
	Msg string
	Pos lexer.Span
}

// Errorf creates a new SyntaxError at the given span.
func Errorf(pos lexer.Span, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (s *SyntaxError) Error() string { return s.Msg }

// Message returns the error message without span context.
func (s *SyntaxError) Message() string { return s.Msg }

// Span returns the span of source the error refers to.
func (s *SyntaxError) Span() lexer.Span { return s.Pos }

// FormatError renders err against the source it arose from: an "error:"
// line followed, when the error carries a span, by the offending line of
// source and a caret underline.
func FormatError(source string, err error) string {
	if spanned, ok := err.(Error); ok {
		return fmt.Sprintf("error: %s\n%s", spanned.Message(), spanned.Span().Underline(source))
	}
	return fmt.Sprintf("error: %s", err)
}
