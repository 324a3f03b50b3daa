package infix

import "fmt"

// Vars is the variable environment an expression is evaluated against,
// mapping identifier names to values.
type Vars map[string]float64

// UnboundVariableError is returned by Eval when an expression references a
// variable with no binding in the environment.
type UnboundVariableError struct {
	Name string
}

func (u *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", u.Name)
}

func (l *Literal) Eval(Vars) (float64, error) { return l.Value, nil }

func (v *Var) Eval(vars Vars) (float64, error) {
	value, ok := vars[v.Name]
	if !ok {
		return 0, &UnboundVariableError{Name: v.Name}
	}
	return value, nil
}

// Eval applies the operator to both operands. There is no short-circuiting;
// the left operand is always evaluated before the right.
func (b *Binop) Eval(vars Vars) (float64, error) {
	lhs, err := b.LHS.Eval(vars)
	if err != nil {
		return 0, err
	}
	rhs, err := b.RHS.Eval(vars)
	if err != nil {
		return 0, err
	}
	return b.Op.Apply(lhs, rhs), nil
}

// Eval returns the value of the argument unchanged. Function names are not
// yet mapped to implementations.
// TODO: resolve Func against a table of builtins (sin, cos, sqrt, ...).
func (c *Call) Eval(vars Vars) (float64, error) {
	return c.Arg.Eval(vars)
}

func (p *Paren) Eval(vars Vars) (float64, error) { return p.Inner.Eval(vars) }

func (n *Negate) Eval(vars Vars) (float64, error) {
	value, err := n.Inner.Eval(vars)
	if err != nil {
		return 0, err
	}
	return -value, nil
}

// Eval evaluates Bound in the current environment, binds it to Name while
// evaluating Body, and restores the environment on every exit path. A
// binding shadowed by Name is reinstated afterwards.
func (l *Let) Eval(vars Vars) (float64, error) {
	bound, err := l.Bound.Eval(vars)
	if err != nil {
		return 0, err
	}
	if vars == nil {
		vars = Vars{}
	}
	prev, shadowed := vars[l.Name]
	vars[l.Name] = bound
	defer func() {
		if shadowed {
			vars[l.Name] = prev
		} else {
			delete(vars, l.Name)
		}
	}()
	return l.Body.Eval(vars)
}
