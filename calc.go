package basecalc

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Calculator runs expressions for an interactive session. It holds the
// session's variables and remembers its recent work so that changing only a
// base does not repeat earlier stages: text is lexed once per distinct input,
// evaluated once per input base, and formatted once per output base. It is not
// safe to use a Calculator concurrently.
type Calculator struct {
	vars  *Vars
	funcs *Funcs

	// lexed holds tokens by the hash of their text. Lexing depends on neither
	// base nor variables, so entries live until the map fills.
	lexed map[uint64]lexed
	eval  struct {
		ok   bool
		text string
		base int
		val  float64
		err  error
	}
	fmt struct {
		ok   bool
		bits uint64
		base int
		out  string
		err  error
	}

	stats Stats
}

type lexed struct {
	text string
	expr Expr
	err  error
}

// maxLexed is the number of distinct texts a Calculator remembers tokens for.
const maxLexed = 64

// Stats counts the work a Calculator has done.
type Stats struct {
	Lexes   int
	Evals   int
	Formats int
}

// NewCalculator creates a calculator. If vars is nil, the calculator uses a
// new table with the default constants. If funcs is nil, it uses DefaultFuncs.
func NewCalculator(vars *Vars, funcs *Funcs) *Calculator {
	if vars == nil {
		vars = NewVars()
	}
	if funcs == nil {
		funcs = DefaultFuncs()
	}
	return &Calculator{vars: vars, funcs: funcs, lexed: make(map[uint64]lexed)}
}

// Lex lexes text, reusing an earlier result for the same text.
func (c *Calculator) Lex(text string) (Expr, error) {
	k := xxhash.Sum64String(text)
	if l, ok := c.lexed[k]; ok && l.text == text {
		return l.expr, l.err
	}
	c.stats.Lexes++
	e, err := Lex(text)
	if len(c.lexed) >= maxLexed {
		clear(c.lexed)
	}
	// A colliding text replaces the old entry.
	c.lexed[k] = lexed{text: text, expr: e, err: err}
	return e, err
}

// Eval evaluates text in the input base, reusing the previous result if
// neither the text nor the base changed.
func (c *Calculator) Eval(text string, base int) (float64, error) {
	e, err := c.Lex(text)
	if err != nil {
		return 0, err
	}
	if c.eval.ok && c.eval.text == text && c.eval.base == base {
		return c.eval.val, c.eval.err
	}
	c.stats.Evals++
	c.eval.val, c.eval.err = Eval(e, base, c.vars, c.funcs)
	c.eval.text = text
	c.eval.base = base
	c.eval.ok = true
	return c.eval.val, c.eval.err
}

// Calc evaluates text in the input base and formats the result in the output
// base.
func (c *Calculator) Calc(text string, in, out int) (string, error) {
	x, err := c.Eval(text, in)
	if err != nil {
		return "", err
	}
	return c.Format(x, out)
}

// Format renders x in base, reusing the previous result if neither x nor the
// base changed.
func (c *Calculator) Format(x float64, base int) (string, error) {
	bits := math.Float64bits(x)
	if c.fmt.ok && c.fmt.bits == bits && c.fmt.base == base {
		return c.fmt.out, c.fmt.err
	}
	c.stats.Formats++
	c.fmt.out, c.fmt.err = FromBase10(x, base)
	c.fmt.bits = bits
	c.fmt.base = base
	c.fmt.ok = true
	return c.fmt.out, c.fmt.err
}

// Forget discards the remembered evaluation and rendering, so that the next
// call evaluates again. Use this when the same text should be evaluated again,
// e.g. when it is resubmitted and may depend on variables that changed since.
// Tokens are kept, since they depend only on the text.
func (c *Calculator) Forget() {
	c.eval.ok = false
	c.fmt.ok = false
}

// Vars returns the calculator's variable table.
func (c *Calculator) Vars() *Vars {
	return c.vars
}

// Funcs returns the calculator's functions.
func (c *Calculator) Funcs() *Funcs {
	return c.funcs
}

// Reset replaces the variable table with a new one holding only the default
// constants.
func (c *Calculator) Reset() {
	c.vars = NewVars()
	c.Forget()
}

// Stats returns the number of times the calculator has run each stage.
func (c *Calculator) Stats() Stats {
	return c.stats
}
