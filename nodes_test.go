package infix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, test := range []struct{ source, rendered string }{
		{"1 - 2 - 3", "[[1 - 2] - 3]"},
		{"2 ** 3 ** 2", "[2 ** [3 ** 2]]"},
		{"1 + 2 * 3", "[1 + [2 * 3]]"},
		{"-2 ** 2", "[-2 ** 2]"},
		{"- -2", "--2"},
		{"(1 + 2) * 3", "[(1 + 2) * 3]"},
		{"sin(x + 1)", "sin([x + 1])"},
		{"let x = 3 in x + 1", "let x = 3 in [x + 1]"},
		{"3.50", "3.5"},
		{"0.0000001", "1e-07"},
		{"+2", "2"},
	} {
		e, err := Parse(test.source)
		require.NoError(t, err, "%q", test.source)
		assert.Equal(t, test.rendered, e.String(), "%q", test.source)
	}
}

func TestSource(t *testing.T) {
	for _, test := range []struct{ source, rendered string }{
		{"1-2 - 3", "1 - 2 - 3"},
		{"2**3 ** 2", "2 ** 3 ** 2"},
		{"(1+2)*3", "(1 + 2) * 3"},
		{"- -2", "- -2"},
		{"-(2)", "-(2)"},
		{"let x=3 in x+1", "let x = 3 in x + 1"},
		{"sin( x )", "sin(x)"},
		{"+2", "2"},
		{"1 + -2 * 3", "1 + -2 * 3"},
		{"0.0000001", "0.0000001"},
		{"1000000000000000000000", "1000000000000000000000"},
	} {
		e, err := Parse(test.source)
		require.NoError(t, err, "%q", test.source)
		assert.Equal(t, test.rendered, e.Source(), "%q", test.source)
	}
}

func TestLiteralSourceDecimal(t *testing.T) {
	// Values whose shortest %g rendering is exponent form must still render
	// as digits the tokenizer can lex.
	for _, test := range []struct {
		value    float64
		rendered string
	}{
		{0.0000001, "0.0000001"},
		{1e21, "1000000000000000000000"},
		{3.5, "3.5"},
		{42, "42"},
	} {
		e := &Literal{Value: test.value}
		assert.Equal(t, test.rendered, e.Source())
		again, err := Parse(e.Source())
		require.NoError(t, err, "%s", e.Source())
		assert.Equal(t, e, again, "%s", e.Source())
	}
}

func TestNegateSource(t *testing.T) {
	e := &Negate{Inner: &Negate{Inner: &Literal{Value: 2}}}
	assert.Equal(t, "--2", e.String())
	assert.Equal(t, "- -2", e.Source())
}
