package infix

import "io"

// An Option modifies the behaviour of Parse.
type Option func(p *parser)

// Trace logs each step of the parse to w: one line per expression parsed,
// indented by nesting depth, showing the token under consideration and the
// minimum operator precedence in effect.
func Trace(w io.Writer) Option {
	return func(p *parser) { p.trace = w }
}
