package basecalc

import (
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// Vars is a table of variable values shared by evaluations of different
// expressions. Assignments in an expression update the table. It is not safe
// to use a Vars concurrently.
type Vars struct {
	names map[string]float64
}

// VarsOption is an option used when creating a variable table.
type VarsOption interface {
	varsOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt    map[string]float64
	noconstopt struct{}
)

func (varopt) varsOption()     {}
func (varsopt) varsOption()    {}
func (noconstopt) varsOption() {}

// SetVar sets the value of a variable in the table.
func SetVar(name string, val float64) VarsOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the table.
func SetVars(vars map[string]float64) VarsOption {
	return varsopt(vars)
}

// NoConstants creates the table without the predefined constants.
func NoConstants() VarsOption {
	return noconstopt{}
}

// Constants is the set of variables that every new table starts with.
var Constants = map[string]float64{
	"pi": constant(bigfloat.Pi),
	"e": constant(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// constant computes a constant to twice the precision of float64 and rounds
// it.
func constant(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(128)
	f(r)
	x, _ := r.Float64()
	return x
}

// NewVars creates a new variable table. Unless NoConstants is given, the
// table is seeded with Constants before applying other options.
func NewVars(opts ...VarsOption) *Vars {
	v := Vars{names: make(map[string]float64, len(Constants))}
	seed := true
	for _, opt := range opts {
		if _, ok := opt.(noconstopt); ok {
			seed = false
		}
	}
	if seed {
		for k, x := range Constants {
			v.names[k] = x
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			v.names[opt.name] = opt.val
		case varsopt:
			for k, x := range opt {
				v.names[k] = x
			}
		case noconstopt:
			// Already done. Do nothing.
		default:
			panic("basecalc: unknown option type")
		}
	}
	return &v
}

// Set sets the value of a variable. Returns v for chaining.
func (v *Vars) Set(name string, val float64) *Vars {
	v.names[name] = val
	return v
}

// Lookup returns the value of a variable and whether it exists.
func (v *Vars) Lookup(name string) (float64, bool) {
	x, ok := v.names[name]
	return x, ok
}

// Names returns the names of all variables in sorted order.
func (v *Vars) Names() []string {
	r := make([]string, 0, len(v.names))
	for k := range v.names {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Len returns the number of variables in the table.
func (v *Vars) Len() int {
	return len(v.names)
}

// Clone creates an independent copy of the table.
func (v *Vars) Clone() *Vars {
	n := Vars{names: make(map[string]float64, len(v.names))}
	for k, x := range v.names {
		n.names[k] = x
	}
	return &n
}
