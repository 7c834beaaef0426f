package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "8/4/2", 1},
		{"mod", "10%3", 1},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"pow-left-assoc", "2^3^2", 64},
		{"neg-leading", "-5+3", -2},
		{"neg-after-op", "3--2", 5},
		{"neg-group", "-(2+3)", -5},
		{"scientific", "2e2+1", 201},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"two-pi", "2*pi", 2 * math.Pi},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"sqrt", "sqrt(16)", 4},
		{"cbrt-negative", "cbrt(-8)", -2},
		{"log", "log(e)", 1},
		{"log10", "log10(1000)", 3},
		{"abs", "abs(-7)", 7},
		{"floor", "floor(2.7)", 2},
		{"ceil", "ceil(2.1)", 3},
		{"round", "round(2.5)", 3},
		{"call-in-expr", "1+2*sqrt(9)", 7},
		{"nested-call", "sqrt(abs(-16))", 4},
		{"whitespace", " 1 +\n2 ", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calc.EvalString(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-12)
		})
	}
}

func TestEvalStringErrors(t *testing.T) {
	t.Run("division-by-zero", func(t *testing.T) {
		for _, src := range []string{"5/0", "5%0", "1+2/(3-3)"} {
			_, err := calc.EvalString(src)
			var derr *calc.DivisionByZeroError
			require.ErrorAs(t, err, &derr, src)
		}
	})
	t.Run("invalid-operation", func(t *testing.T) {
		for _, src := range []string{
			"sqrt(-4)", "log(0)", "log(-1)", "log10(0)", // domain
			"2+", "*3", "sin()", // missing operands
			"1 0", "", // malformed final stack
		} {
			_, err := calc.EvalString(src)
			var oerr *calc.InvalidOperationError
			require.ErrorAs(t, err, &oerr, src)
		}
	})
	t.Run("lexical", func(t *testing.T) {
		for _, src := range []string{"(2+3", "2+3)", "xyz", "1.2.3"} {
			_, err := calc.EvalString(src)
			var ierr calc.InputError
			require.ErrorAs(t, err, &ierr, src)
		}
	})
}

func TestRoundTripNeverPanics(t *testing.T) {
	// Well-formed or not, the pipeline must return a value or an error,
	// never panic.
	srcs := []string{
		"", "(", ")", "-", "--", "2^", "^2", "((2+3))*4", "sin", "sin(",
		"e", "ee", "pi pi", "1e309", "-1e309", "0.0/0.0",
	}
	for _, src := range srcs {
		assert.NotPanics(t, func() { calc.EvalString(src) }, src)
	}
}
