//go:build go1.18
// +build go1.18

package basecalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/basecalc"
)

func FuzzLex(f *testing.F) {
	f.Add("x")
	f.Add("2+3*4")
	f.Add("sqrt(sqrt(16))")
	f.Add("f(g(1)")
	f.Fuzz(func(t *testing.T, s string) {
		basecalc.Lex(s)
	})
}

func FuzzEval(f *testing.F) {
	f.Add("x", 10)
	f.Add("ff+1", 16)
	f.Add("(1+2", 2)
	f.Add("x=y=3", 36)
	f.Fuzz(func(t *testing.T, s string, base int) {
		basecalc.EvalString(s, base, basecalc.NewVars(basecalc.SetVar("x", 0)))
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0), 2)
	f.Add(uint64(255), 16)
	f.Add(uint64(1<<53-1), 61)
	f.Fuzz(func(t *testing.T, n uint64, base int) {
		if base < basecalc.MinBase || base > basecalc.MaxBase {
			return
		}
		x := float64(n % (1 << 53))
		s, err := basecalc.FromBase10(x, base)
		if err != nil {
			t.Fatal(err)
		}
		r, err := basecalc.ToBase10(s, base)
		if err != nil {
			t.Fatalf("%g in base %d as %q: %v", x, base, s, err)
		}
		if r != x && !(math.IsNaN(r) && math.IsNaN(x)) {
			t.Errorf("%g in base %d as %q came back as %g", x, base, s, r)
		}
	})
}
