package basecalc_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/basecalc"
)

func TestToBase10(t *testing.T) {
	cases := []struct {
		digits string
		base   int
		want   float64
	}{
		{"0", 2, 0},
		{"", 10, 0},
		{"1010", 2, 10},
		{"ff", 16, 255},
		{"FF", 16, 255},
		{"fF", 16, 255},
		{"zz", 36, 1295},
		{"ZZ", 36, 1295},
		{"a", 37, 10},
		{"A", 37, 36},
		{"Y", 61, 60},
		{"10", 61, 61},
		{"0.1", 2, 0.5},
		{"0.11", 2, 0.75},
		{"ff.8", 16, 255.5},
		{"10.", 10, 10},
		{".5", 10, 0.5},
		{"123.25", 10, 123.25},
		{"KY1TmDjDO", 61, 1<<53 - 1},
		{"inf", 2, math.Inf(1)},
		{"INF", 16, math.Inf(1)},
		{"inf", 61, math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.digits+"_"+strconv.Itoa(c.base), func(t *testing.T) {
			got, err := basecalc.ToBase10(c.digits, c.base)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %g, got %g", c.want, got)
			}
		})
	}
	if got, err := basecalc.ToBase10("nan", 10); err != nil || !math.IsNaN(got) {
		t.Errorf("nan gave %g, %v", got, err)
	}
}

func TestToBase10Errors(t *testing.T) {
	cases := []struct {
		name   string
		digits string
		base   int
		err    interface{}
	}{
		{"digit-high", "2", 2, new(*basecalc.DigitError)},
		{"hex-g", "fg", 16, new(*basecalc.DigitError)},
		{"case-sensitive", "z", 37, new(*basecalc.DigitError)},
		{"frac-digit", "1.9", 8, new(*basecalc.DigitError)},
		{"sign", "-1", 10, new(*basecalc.DigitError)},
		{"not-alphabet", "1_0", 10, new(*basecalc.DigitError)},
		{"points", "1.1.1", 10, new(*basecalc.DecimalPointError)},
		{"only-points", "..", 10, new(*basecalc.DecimalPointError)},
		{"base-one", "0", 1, new(*basecalc.BaseError)},
		{"base-zero", "0", 0, new(*basecalc.BaseError)},
		{"base-alphabet", "0", len(basecalc.Digits), new(*basecalc.BaseError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := basecalc.ToBase10(c.digits, c.base)
			if err == nil {
				t.Fatalf("%q in base %d gave no error, result %g", c.digits, c.base, r)
			}
			if !errors.As(err, c.err) {
				t.Errorf("wrong error type %T: %v", err, err)
			}
		})
	}
}

func TestDigitErrorPos(t *testing.T) {
	_, err := basecalc.ToBase10("10.29", 8)
	var de *basecalc.DigitError
	if !errors.As(err, &de) {
		t.Fatalf("error was %#v, not DigitError", err)
	}
	if de.Digit != '9' || de.Col != 5 || de.Base != 8 {
		t.Errorf("wrong error %+v", de)
	}
	if msg := de.Error(); !strings.Contains(msg, "base 8") {
		t.Errorf("%q doesn't mention the base", msg)
	}
}

func TestFromBase10(t *testing.T) {
	cases := []struct {
		x    float64
		base int
		want string
	}{
		{0, 2, "0"},
		{255, 16, "ff"},
		{255, 10, "255"},
		{10, 16, "a"},
		{-10, 2, "-1010"},
		{35, 36, "z"},
		{36, 37, "A"},
		{60, 61, "Y"},
		{61, 61, "10"},
		{0.5, 2, "0.1"},
		{0.75, 2, "0.11"},
		{-0.5, 16, "-0.8"},
		{255.5, 16, "ff.8"},
		{2.5, 10, "2.5"},
		{0.1, 10, "0.1"},
		{1e21, 10, "1000000000000000000000"},
		{1 << 53, 2, "1" + strings.Repeat("0", 53)},
		// Fractions stop after MaxFracDigits.
		{1.0 / 3, 10, "0.333333333333333"},
		{0.1, 2, "0.000110011001100"},
		{math.Pi, 10, "3.141592653589793"},
		{math.E, 16, "2.b7e151628aed2"},
		{math.NaN(), 10, "nan"},
		{math.Inf(1), 10, "inf"},
		{math.Inf(-1), 16, "inf"},
		{math.Copysign(0, -1), 10, "0"},
	}
	for _, c := range cases {
		t.Run(c.want+"_"+strconv.Itoa(c.base), func(t *testing.T) {
			got, err := basecalc.FromBase10(c.x, c.base)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestFromBase10Errors(t *testing.T) {
	for _, base := range []int{-1, 0, 1, basecalc.MaxBase + 1, 100} {
		_, err := basecalc.FromBase10(1, base)
		var be *basecalc.BaseError
		if !errors.As(err, &be) {
			t.Errorf("base %d gave %v, not BaseError", base, err)
			continue
		}
		if be.Base != base {
			t.Errorf("base %d reported as %d", base, be.Base)
		}
	}
}

func TestZeroAllBases(t *testing.T) {
	for base := basecalc.MinBase; base <= basecalc.MaxBase; base++ {
		if s, err := basecalc.FromBase10(0, base); err != nil || s != "0" {
			t.Errorf("0 in base %d gave %q, %v", base, s, err)
		}
	}
}

func TestRoundTripIntegers(t *testing.T) {
	nums := []float64{0, 1, 2, 7, 10, 60, 61, 100, 255, 1000, 12345, 65535, 1e9, 123456789012, 1<<53 - 1, 1 << 53}
	for base := basecalc.MinBase; base <= basecalc.MaxBase; base++ {
		for _, n := range nums {
			s, err := basecalc.FromBase10(n, base)
			if err != nil {
				t.Fatalf("%g in base %d: %v", n, base, err)
			}
			r, err := basecalc.ToBase10(s, base)
			if err != nil {
				t.Fatalf("%q in base %d: %v", s, base, err)
			}
			if r != n {
				t.Errorf("%g in base %d as %q came back as %g", n, base, s, r)
			}
		}
	}
}

func TestRoundTripFractions(t *testing.T) {
	// Dyadic fractions are exact in even bases.
	nums := []float64{0.5, 0.25, 0.75, 1.125, 1000.0625}
	for base := 2; base <= basecalc.MaxBase; base += 2 {
		for _, n := range nums {
			s, err := basecalc.FromBase10(n, base)
			if err != nil {
				t.Fatalf("%g in base %d: %v", n, base, err)
			}
			r, err := basecalc.ToBase10(s, base)
			if err != nil {
				t.Fatalf("%q in base %d: %v", s, base, err)
			}
			if math.Abs(r-n) > 1e-12 {
				t.Errorf("%g in base %d as %q came back as %g", n, base, s, r)
			}
		}
	}
}
