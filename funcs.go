package basecalc

import (
	"math"
	"sort"
	"strconv"
)

// Func is a function from reals to reals.
type Func struct {
	// Arity is the number of arguments the function takes.
	Arity int
	// Native computes the function. args has length Arity. If Native is nil,
	// the function is reserved but has no implementation, and calling it is
	// an *UnsupportedError.
	Native func(args []float64) (float64, error)
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return Func{
		Arity: 1,
		Native: func(args []float64) (float64, error) {
			return f(args[0]), nil
		},
	}
}

// Funcs is a set of functions available to expressions. A Funcs is immutable
// once created, so it is safe to share.
type Funcs struct {
	m map[string]Func
}

var builtins = map[string]Func{
	"sin":  Monadic(math.Sin),
	"cos":  Monadic(math.Cos),
	"tan":  Monadic(math.Tan),
	"asin": Monadic(math.Asin),
	"acos": Monadic(math.Acos),
	"atan": Monadic(math.Atan),
	"exp":  Monadic(math.Exp),
	"sqrt": Monadic(math.Sqrt),
	"cbrt": Monadic(math.Cbrt),
	"fac":  {Arity: 1, Native: factorial},
}

var defaultFuncs = &Funcs{m: builtins}

// DefaultFuncs returns the builtin functions: sin, cos, tan, asin, acos, atan,
// exp, sqrt, cbrt, and fac.
func DefaultFuncs() *Funcs {
	return defaultFuncs
}

// NewFuncs creates a function set from a map. The map is copied.
func NewFuncs(fns map[string]Func) *Funcs {
	m := make(map[string]Func, len(fns))
	for k, v := range fns {
		m[k] = v
	}
	return &Funcs{m: m}
}

// Lookup gets a function by name.
func (f *Funcs) Lookup(name string) (Func, bool) {
	fn, ok := f.m[name]
	return fn, ok
}

// Names returns the names of all functions in sorted order.
func (f *Funcs) Names() []string {
	r := make([]string, 0, len(f.m))
	for k := range f.m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// factorial computes x! for integral x. Negative x gives 1.
func factorial(args []float64) (float64, error) {
	x := args[0]
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, &DomainError{X: x, Arg: 1, Func: "fac"}
	}
	r := 1.0
	for i := 2.0; i <= x && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r, nil
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
