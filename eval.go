package basecalc

import (
	"math"
)

// Eval evaluates a postfix expression, interpreting literals in the given
// input base. Assignments in the expression are stored in vars. If vars is
// nil, a new table with the default constants is used for the evaluation. If
// funcs is nil, DefaultFuncs is used.
//
// A name that is not in vars but is a valid digit string in base evaluates as
// a number, so ff is 255 in base 16. Consequently an unset name is only a
// *NameError when its runes are not all digits of base: y is a NameError in
// base 10 but 34 in base 36.
//
// An empty expression evaluates to 0. Division by zero is not an error; it
// gives an infinity, or NaN for 0/0.
func Eval(e Expr, base int, vars *Vars, funcs *Funcs) (float64, error) {
	if err := CheckBase(base); err != nil {
		return 0, err
	}
	if vars == nil {
		vars = NewVars()
	}
	if funcs == nil {
		funcs = DefaultFuncs()
	}
	ev := evaluator{base: base, vars: vars, funcs: funcs}
	return ev.eval(e)
}

// EvalString is a shortcut to lex and evaluate a string expression.
func EvalString(src string, base int, vars *Vars) (float64, error) {
	e, err := Lex(src)
	if err != nil {
		return 0, err
	}
	return Eval(e, base, vars, nil)
}

type evaluator struct {
	base  int
	vars  *Vars
	funcs *Funcs
}

// eval runs e on its own operand stack. Operands stay unresolved tokens until
// an operator consumes them so that assignment can see a symbol's name.
func (ev *evaluator) eval(e Expr) (float64, error) {
	var stack []Token
	for _, t := range e {
		switch t.Kind {
		case TokenNumber, TokenLiteral, TokenSymbol:
			stack = append(stack, t)
		case TokenOperator:
			if t.Text == "(" {
				return 0, &BracketError{Col: t.Pos}
			}
			if len(stack) < 2 {
				return 0, &OperatorError{Col: t.Pos, Operator: t.Text, Have: len(stack)}
			}
			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			y, err := ev.num(rhs)
			if err != nil {
				return 0, err
			}
			if t.Text == "=" {
				if lhs.Kind != TokenSymbol {
					return 0, &AssignError{Col: t.Pos, Target: lhs.String()}
				}
				ev.vars.Set(lhs.Text, y)
				// Push the name rather than the value so that a later read
				// goes through the table.
				stack = append(stack, lhs)
				continue
			}
			x, err := ev.num(lhs)
			if err != nil {
				return 0, err
			}
			stack = append(stack, Token{Kind: TokenNumber, Num: arith(t.Text, x, y), Pos: lhs.Pos})
		case TokenFunction:
			r, err := ev.call(t)
			if err != nil {
				return 0, err
			}
			stack = append(stack, Token{Kind: TokenNumber, Num: r, Pos: t.Pos})
		default:
			panic("basecalc: invalid token kind " + t.Kind.String())
		}
	}
	switch len(stack) {
	case 0:
		return 0, nil
	case 1:
		return ev.num(stack[0])
	default:
		return 0, &MissingOperatorError{Col: stack[len(stack)-1].Pos, Values: len(stack)}
	}
}

// num resolves an operand to its value.
func (ev *evaluator) num(t Token) (float64, error) {
	switch t.Kind {
	case TokenNumber:
		return t.Num, nil
	case TokenLiteral:
		x, err := ToBase10(t.Text, ev.base)
		if err != nil {
			return 0, &LiteralError{Col: t.Pos, Err: err}
		}
		if t.Neg {
			x = -x
		}
		return x, nil
	case TokenSymbol:
		if x, ok := ev.vars.Lookup(t.Text); ok {
			return x, nil
		}
		// Names that aren't variables may be numbers written with letters,
		// e.g. ff in base 16.
		if x, err := ToBase10(t.Text, ev.base); err == nil {
			return x, nil
		}
		return 0, &NameError{Name: t.Text}
	default:
		panic("basecalc: cannot take value of " + t.Kind.String() + " token")
	}
}

// call evaluates a function's arguments and applies the function.
func (ev *evaluator) call(t Token) (float64, error) {
	fn, ok := ev.funcs.Lookup(t.Text)
	if !ok {
		return 0, &NameError{Name: t.Text, Func: true}
	}
	if len(t.Args) != fn.Arity {
		return 0, &CallError{Col: t.Pos, Func: t.Text, Len: len(t.Args), Want: fn.Arity}
	}
	if fn.Native == nil {
		return 0, &UnsupportedError{Func: t.Text}
	}
	args := make([]float64, len(t.Args))
	for i, a := range t.Args {
		x, err := ev.eval(a)
		if err != nil {
			return 0, err
		}
		args[i] = x
	}
	return fn.Native(args)
}

func arith(op string, x, y float64) float64 {
	switch op {
	case "^":
		return math.Pow(x, y)
	case "*":
		return x * y
	case "/":
		return x / y
	case "%":
		return math.Mod(x, y)
	case "+":
		return x + y
	case "-":
		return x - y
	default:
		panic("basecalc: invalid operator " + op)
	}
}
