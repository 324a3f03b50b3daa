package infix

// Parse converts source text into an expression tree.
//
// Errors are either a *lexer.Error or a *SyntaxError; both implement Error
// and carry the span of source they refer to.
func Parse(source string, options ...Option) (Expr, error) {
	p, err := newParser(source, options...)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

// MustParse is like Parse but panics if the source does not parse.
func MustParse(source string, options ...Option) Expr {
	e, err := Parse(source, options...)
	if err != nil {
		panic(err)
	}
	return e
}

// Eval parses source and evaluates it against vars.
func Eval(source string, vars Vars) (float64, error) {
	e, err := Parse(source)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}
