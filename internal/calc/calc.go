// Package calc evaluates the arithmetic/bitwise expressions behind the math
// mode. Expressions are tokenized, rewritten into postfix form with the
// shunting-yard algorithm, and run on a small value stack.
package calc

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	errParens     = errors.New("Mismatched parentheses")
	errFloat      = errors.New("Invalid float literal")
	errUnderflow  = errors.New("Not enough values for the remaining operators")
	errEmpty      = errors.New("Nothing to evaluate")
	hexLiteralRe  = regexp.MustCompile(`0[xX][0-9a-fA-F]+`)
	binLiteralRe  = regexp.MustCompile(`0[bB][01]+`)
	errBadChar    = errors.New("Unexpected character in expression")
	errBadOperand = errors.New("Operator is missing an operand")
)

// Operator precedence, tighter binds lower.
var precedence = map[string]int{
	"**": 1,
	"<<": 2, ">>": 2,
	"*": 3, "/": 3,
	"+": 4, "-": 4,
	"&": 5,
	"^": 6,
	"|": 7,
}

// value is either a 64-bit signed integer or a 64-bit float. Arithmetic
// promotes to float; bitwise operators truncate to integer.
type value struct {
	i     int64
	f     float64
	isInt bool
}

func intValue(i int64) value   { return value{i: i, isInt: true} }
func floatValue(f float64) value { return value{f: f} }

func (v value) toFloat() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

func (v value) toInt() int64 {
	if v.isInt {
		return v.i
	}
	return int64(v.f)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind tokenKind
	op   string
	val  value
}

// Eval evaluates an expression and renders the result. Integer results carry
// their hex and binary spellings; float results use the shortest decimal
// form, with division by zero yielding "inf" rather than an error.
func Eval(expr string) (string, error) {
	tokens, err := tokenize(rewriteRadixLiterals(expr))
	if err != nil {
		return "", err
	}
	rpn, err := shuntingYard(tokens)
	if err != nil {
		return "", err
	}
	result, err := evalRPN(rpn)
	if err != nil {
		return "", err
	}
	return format(result), nil
}

// rewriteRadixLiterals replaces 0x... and 0b... literals with their decimal
// spelling so the tokenizer only ever sees decimal digits.
func rewriteRadixLiterals(expr string) string {
	expr = hexLiteralRe.ReplaceAllStringFunc(expr, func(m string) string {
		n, err := strconv.ParseUint(m[2:], 16, 64)
		if err != nil {
			return m
		}
		return strconv.FormatUint(n, 10)
	})
	return binLiteralRe.ReplaceAllStringFunc(expr, func(m string) string {
		n, err := strconv.ParseUint(m[2:], 2, 64)
		if err != nil {
			return m
		}
		return strconv.FormatUint(n, 10)
	})
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)

	lastAllowsImplicitMul := func() bool {
		if len(tokens) == 0 {
			return false
		}
		last := tokens[len(tokens)-1]
		return last.kind == tokenNumber || last.kind == tokenRightParen
	}
	// A sign is unary when it cannot continue a value.
	signIsUnary := func() bool {
		if len(tokens) == 0 {
			return true
		}
		last := tokens[len(tokens)-1]
		return last.kind == tokenOperator || last.kind == tokenLeftParen
	}

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			lit := string(runes[start:i])
			tok, err := numberToken(lit)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case r == '(':
			if lastAllowsImplicitMul() {
				tokens = append(tokens, token{kind: tokenOperator, op: "*"})
			}
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		case (r == '+' || r == '-') && signIsUnary():
			// Fold the sign into the literal that follows.
			i++
			for i < len(runes) && runes[i] == ' ' {
				i++
			}
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			if start == i {
				return nil, errBadOperand
			}
			tok, err := numberToken(string(runes[start:i]))
			if err != nil {
				return nil, err
			}
			if r == '-' {
				if tok.val.isInt {
					tok.val.i = -tok.val.i
				} else {
					tok.val.f = -tok.val.f
				}
			}
			tokens = append(tokens, tok)
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, token{kind: tokenOperator, op: "**"})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokenOperator, op: "*"})
				i++
			}
		case r == '<' || r == '>':
			if i+1 < len(runes) && runes[i+1] == r {
				tokens = append(tokens, token{kind: tokenOperator, op: string(r) + string(r)})
				i += 2
			} else {
				return nil, errBadChar
			}
		case r == '+' || r == '-' || r == '/' || r == '&' || r == '|' || r == '^':
			tokens = append(tokens, token{kind: tokenOperator, op: string(r)})
			i++
		default:
			return nil, errBadChar
		}
	}
	return tokens, nil
}

func numberToken(lit string) (token, error) {
	if strings.Contains(lit, ".") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return token{}, errFloat
		}
		return token{kind: tokenNumber, val: floatValue(f)}, nil
	}
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return token{kind: tokenNumber, val: intValue(n)}, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token{}, errFloat
	}
	return token{kind: tokenNumber, val: floatValue(f)}, nil
}

func shuntingYard(tokens []token) ([]token, error) {
	var output []token
	var stack []token

	for _, tok := range tokens {
		switch tok.kind {
		case tokenNumber:
			output = append(output, tok)
		case tokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOperator {
					break
				}
				// All operators are left-associative.
				if precedence[top.op] > precedence[tok.op] {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenLeftParen:
			stack = append(stack, tok)
		case tokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, errParens
			}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLeftParen {
			return nil, errParens
		}
		output = append(output, top)
	}
	if len(output) == 0 {
		return nil, errEmpty
	}
	return output, nil
}

func evalRPN(rpn []token) (value, error) {
	var stack []value
	for _, tok := range rpn {
		if tok.kind == tokenNumber {
			stack = append(stack, tok.val)
			continue
		}
		if len(stack) < 2 {
			return value{}, errUnderflow
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, applyOperator(tok.op, l, r))
	}
	if len(stack) != 1 {
		return value{}, errUnderflow
	}
	return stack[0], nil
}

func applyOperator(op string, l, r value) value {
	switch op {
	case "+":
		return floatValue(l.toFloat() + r.toFloat())
	case "-":
		return floatValue(l.toFloat() - r.toFloat())
	case "*":
		return floatValue(l.toFloat() * r.toFloat())
	case "/":
		return floatValue(l.toFloat() / r.toFloat())
	case "**":
		return floatValue(math.Pow(l.toFloat(), r.toFloat()))
	case "<<":
		return intValue(l.toInt() << uint64(r.toInt()))
	case ">>":
		return intValue(l.toInt() >> uint64(r.toInt()))
	case "&":
		return intValue(l.toInt() & r.toInt())
	case "|":
		return intValue(l.toInt() | r.toInt())
	case "^":
		return intValue(l.toInt() ^ r.toInt())
	}
	return value{}
}

func format(v value) string {
	if v.isInt {
		return formatInt(v.i)
	}
	f := v.f
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if f == math.Trunc(f) && math.Abs(f) < float64(math.MaxInt64) {
		return formatInt(int64(f))
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(n int64) string {
	return fmt.Sprintf("%d (0x%X) (0b%b)", n, n, n)
}
