package lexer

import (
	"fmt"
	"strings"
)

// A Span is a half-open byte range [Begin, Begin+Length) into the source
// text. A zero-length span marks a point, such as the end of input.
type Span struct {
	Begin  int
	Length int
}

// End returns the first byte offset after the span.
func (s Span) End() int { return s.Begin + s.Length }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Begin, s.End()) }

// Underline returns the line of source containing the span followed by a
// second line underlining the span with carets. Tabs in the prefix are
// preserved so the underline stays aligned however the line is displayed.
// A zero-length span renders a single caret at its position.
func (s Span) Underline(source string) string {
	begin := s.Begin
	if begin >= len(source) {
		begin = len(source) - 1
	}
	if begin < 0 {
		begin = 0
	}
	lineStart := strings.LastIndexByte(source[:begin], '\n') + 1
	lineEnd := begin
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	out := strings.Builder{}
	out.WriteString(source[lineStart:lineEnd])
	out.WriteByte('\n')
	for i := lineStart; i < s.Begin && i < len(source); i++ {
		if source[i] == '\t' {
			out.WriteByte('\t')
		} else {
			out.WriteByte(' ')
		}
	}
	out.WriteByte('^')
	for i := s.Begin + 1; i < s.End()-1; i++ {
		out.WriteByte('~')
	}
	if s.Length > 1 {
		out.WriteByte('^')
	}
	return out.String()
}
