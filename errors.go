package basecalc

import (
	"strconv"
)

// BaseError is an error indicating a base outside [MinBase, MaxBase].
type BaseError struct {
	// Base is the unsupported base.
	Base int
}

func (err *BaseError) Error() string {
	return "unsupported base " + strconv.Itoa(err.Base) + " (must be " + strconv.Itoa(MinBase) + " to " + strconv.Itoa(MaxBase) + ")"
}

// DigitError is an error indicating a digit whose value is not less than the
// base, or a rune that is not a digit at all.
type DigitError struct {
	// Digits is the digit string containing the invalid digit.
	Digits string
	// Digit is the invalid digit.
	Digit rune
	// Base is the base in which the digits were interpreted.
	Base int
	// Col is the position of the digit within Digits.
	Col int
}

func (err *DigitError) Error() string {
	return "invalid digit " + strconv.QuoteRune(err.Digit) + " in base " + strconv.Itoa(err.Base) + " number " + strconv.Quote(err.Digits)
}

// DecimalPointError is an error indicating a number with more than one radix
// point.
type DecimalPointError struct {
	Digits string
}

func (err *DecimalPointError) Error() string {
	return "multiple decimal points in number " + strconv.Quote(err.Digits)
}

// LiteralError is an error converting a literal token to a number. It wraps
// the *BaseError, *DigitError, or *DecimalPointError from ToBase10. It
// implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Err is the conversion error.
	Err error
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, err.Err.Error())
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket with no matching close
// bracket. It implements InputError.
type BracketError struct {
	// Col is the position of the open bracket.
	Col int
	// Func is the name of the function being called, if any.
	Func string
}

func (err *BracketError) Error() string {
	if err.Func == "" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "call to "+err.Func+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator without enough operands.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// AssignError is an error indicating an assignment to something other than a
// variable name. It implements InputError.
type AssignError struct {
	// Col is the position of the = operator.
	Col int
	// Target is the token that appeared on the left of the assignment.
	Target string
}

func (err *AssignError) Error() string {
	return errpos(err.Col, "cannot assign to "+strconv.Quote(err.Target)+": not a variable")
}

func (err *AssignError) Pos() int {
	return err.Col
}

// MissingOperatorError is an error indicating that an expression left more
// than one value after evaluation, e.g. "2 3". It implements InputError.
type MissingOperatorError struct {
	// Col is the position of the last leftover value.
	Col int
	// Values is the number of values that were left.
	Values int
}

func (err *MissingOperatorError) Error() string {
	return errpos(err.Col, "missing operator: "+strconv.Itoa(err.Values)+" values with nothing to combine them")
}

func (err *MissingOperatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the call.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments given.
	Len int
	// Want is the function's arity.
	Want int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments (want "+strconv.Itoa(err.Want)+")")
}

func (err *CallError) Pos() int {
	return err.Col
}

// UnsupportedError is an error indicating a call to a registered function
// that has no native implementation.
type UnsupportedError struct {
	Func string
}

func (err *UnsupportedError) Error() string {
	return "function " + err.Func + " is not supported"
}

// NameError is an error from a lookup for a variable or function that does
// not exist.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Func indicates that the name was used as a function.
	Func bool
}

func (err *NameError) Error() string {
	if err.Func {
		return "undefined function: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*MissingOperatorError)(nil)
	_ InputError = (*CallError)(nil)
)
