// Package basecalc implements a floating-point calculator that reads and
// writes numbers in any base from 2 to 61.
//
// Evaluation happens in three stages. Lex converts an infix expression to a
// postfix Expr without regard to any base, so "ff + 1" lexes the same whether
// it is later read as hex or rejected as decimal. Eval runs an Expr with
// literals read in an input base, against a table of variables that
// assignments like "x = 5" update. Format writes the result in an output base.
// A Calculator remembers the result of each stage, so that changing the
// output base of a displayed result does not reevaluate it.
//
// Operators, from most to least binding, are ^; * and /; %, +, and -; and =.
// All are left-associative, so "2^3^2" is 64. A minus sign negates a number
// written directly after it, as in "3*-2", but not a name or bracketed term.
// Functions take a single bracketed argument: "sqrt(16)".
//
// The digit alphabet is 0-9, then a-z, then A-Z. In bases up to 36, letters
// are case-insensitive. A name that isn't a variable is read as a number if
// its letters are digits in the input base; a number that collides with a
// variable name, like "e" in base 16, can be written with a leading zero.
package basecalc
