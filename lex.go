package basecalc

import (
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are lexed as operators. The open bracket
// is treated as an operator so that it can be held on the operator stack.
const Operators = "^*/%+-(="

// precedence gets the binding of an operator. Lower binds more tightly. Every
// operator is left-associative.
func precedence(op string) int {
	switch op {
	case "^":
		return 1
	case "*", "/":
		return 2
	case "%", "+", "-":
		return 3
	case "(":
		return 4
	case "=":
		return 5
	default:
		panic("basecalc: invalid operator " + strconv.Quote(op))
	}
}

// Lex scans an infix expression and converts it to postfix order.
//
// Numeric literals begin with a decimal digit and continue through any runes
// in Digits and radix points; they are not checked against a base until
// evaluation. A minus sign directly before a literal, where an operand is
// expected, negates the literal. Names contain letters, digits, $, and _. A
// name directly followed by a bracketed expression is a function call; the
// bracket contents are lexed as the call's only argument.
func Lex(src string) (Expr, error) {
	r := make([]rune, 0, len(src)+1)
	r = append(r, []rune(src)...)
	return lex(r, 1)
}

// lex performs the shunting-yard conversion over src. col is the column of
// src[0] in the outermost source.
func lex(src []rune, col int) (Expr, error) {
	// A trailing space means there is always a rune after the last token.
	src = append(src, ' ')
	var (
		out   Expr
		stack []Token
		// canneg is whether a minus sign here would negate a literal.
		canneg = true
		neg    bool
	)
	for i := 0; i < len(src); {
		r := src[i]
		pos := col + i
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '-' && canneg && isDecimal(src[i+1]):
			neg, canneg = true, false
			i++
		case isDecimal(r):
			j := i + 1
			for isLiteralRune(src[j]) {
				j++
			}
			out = append(out, Token{Kind: TokenLiteral, Text: string(src[i:j]), Neg: neg, Pos: pos})
			neg, canneg = false, false
			i = j
		case r == ')':
			// An unmatched close bracket just empties the stack.
			for len(stack) > 0 {
				t := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if t.Text == "(" {
					break
				}
				out = append(out, t)
			}
			canneg = false
			i++
		case isNameStart(r):
			j := i + 1
			for isNameRune(src[j]) {
				j++
			}
			t := Token{Kind: TokenSymbol, Text: string(src[i:j]), Pos: pos}
			if src[j] == '(' {
				k := matchBracket(src, j)
				if k < 0 {
					return nil, &BracketError{Col: col + j, Func: t.Text}
				}
				t.Kind = TokenFunction
				if k > j+1 {
					arg, err := lex(src[j+1:k:k], col+j+1)
					if err != nil {
						return nil, err
					}
					t.Args = []Expr{arg}
				}
				j = k + 1
			}
			out = append(out, t)
			canneg = false
			i = j
		case strings.ContainsRune(Operators, r):
			t := Token{Kind: TokenOperator, Text: string(r), Pos: pos}
			if r != '(' {
				p := precedence(t.Text)
				// An open bracket stays until its close bracket pops it.
				for len(stack) > 0 && stack[len(stack)-1].Text != "(" && precedence(stack[len(stack)-1].Text) <= p {
					out = append(out, stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
			}
			stack = append(stack, t)
			canneg = true
			i++
		default:
			return nil, &LexError{Text: string(r), Col: pos}
		}
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// matchBracket finds the close bracket matching the open bracket at src[open],
// or -1 if there is none.
func matchBracket(src []rune, open int) int {
	depth := 0
	for k := open; k < len(src); k++ {
		switch src[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}

func isDecimal(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLiteralRune(r rune) bool {
	return r == '.' || digitValue(r) >= 0
}

func isNameStart(r rune) bool {
	return r == '$' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isNameRune(r rune) bool {
	return r == '$' || r == '_' || digitValue(r) >= 0
}

// LexError indicates a rune that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Text is the invalid rune.
	Text string
	// Col is the position of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	return "unknown token at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
