package basecalc

import (
	"strconv"
	"strings"
)

// Expr is a lexed expression: a sequence of tokens in postfix order. An Expr
// does not depend on any base, so it can be evaluated any number of times
// with different input bases.
type Expr []Token

// Token is a single element of a postfix expression.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Text is the raw digits of a literal, the operator, or the name of a
	// symbol or function.
	Text string
	// Neg indicates a literal preceded by a unary minus.
	Neg bool
	// Num is the value of a number token.
	Num float64
	// Args is the argument expressions of a function call.
	Args []Expr
	// Pos is the column of the token in its source, counting from 1.
	Pos int
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a resolved value. Only evaluation produces numbers.
	TokenNumber
	// TokenLiteral is a digit string whose base is not yet known.
	TokenLiteral
	// TokenOperator is one of ^ * / % + - ( =.
	TokenOperator
	// TokenSymbol is a variable name.
	TokenSymbol
	// TokenFunction is a function call with its argument expressions.
	TokenFunction
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenLiteral:
		return "Literal"
	case TokenOperator:
		return "Operator"
	case TokenSymbol:
		return "Symbol"
	case TokenFunction:
		return "Function"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String formats the postfix sequence with tokens separated by spaces.
// Function arguments are written in square brackets, e.g. "2 sqrt[16] *".
func (e Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e Expr) fmt(b *strings.Builder) {
	for i, t := range e {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmt(b)
	}
}

func (t Token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t Token) fmt(b *strings.Builder) {
	switch t.Kind {
	case TokenNumber:
		b.WriteString(strconv.FormatFloat(t.Num, 'g', -1, 64))
	case TokenLiteral:
		if t.Neg {
			b.WriteByte('-')
		}
		b.WriteString(t.Text)
	case TokenOperator, TokenSymbol:
		b.WriteString(t.Text)
	case TokenFunction:
		b.WriteString(t.Text)
		b.WriteByte('[')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(']')
	default:
		panic("basecalc: invalid token kind " + t.Kind.String() + " after writing " + b.String())
	}
}
