//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"calc"
)

func FuzzEvalString(f *testing.F) {
	f.Add("2+3*4")
	f.Add("-(2+3)^2")
	f.Add("log10(100)+sin(pi/2)")
	f.Add("3--2e-1")
	f.Fuzz(func(t *testing.T, s string) {
		calc.EvalString(s)
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("sqrt(abs(-16))%5")
	f.Add("1.5e+3)")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := calc.Tokenize(s)
		if err != nil {
			if tokens != nil {
				t.Errorf("tokenizing %q: partial sequence %v alongside error %v", s, tokens, err)
			}
			return
		}
		calc.ToPostfix(tokens)
	})
}
