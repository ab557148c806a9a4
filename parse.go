package rpncalc

import (
	"io"
	"strings"
)

// Expr is an expression converted to postfix order. It can be evaluated any
// number of times, concurrently if desired.
type Expr struct {
	// src is the normalized expression.
	src string
	// postfix is the token stream in evaluation order.
	postfix []Token
	// degrees is the angle mode requested by the parse options, used by
	// EvalString.
	degrees bool
}

// Parse normalizes an expression and converts it to postfix order so it can
// be evaluated. The given options are applied in order.
func Parse(expression string, opts ...Option) (*Expr, error) {
	p, err := newparsectx(opts)
	if err != nil {
		return nil, err
	}
	src, err := Normalize(expression)
	if err != nil {
		return nil, err
	}
	postfix, err := topostfix(src, p.sep)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, postfix: postfix, degrees: p.degrees}, nil
}

// ToPostfix converts a normalized expression to postfix order using the
// shunting-yard algorithm. Only the DecimalSeparator option affects the
// conversion.
func ToPostfix(normalized string, opts ...Option) ([]Token, error) {
	p, err := newparsectx(opts)
	if err != nil {
		return nil, err
	}
	return topostfix(normalized, p.sep)
}

func topostfix(src string, sep rune) ([]Token, error) {
	scan := lex(src, sep)
	var (
		out   []Token
		stack opstack
	)
	for {
		tok, err := scan.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			stack.push(tok)
		case TokenClose:
			for {
				if stack.empty() {
					return nil, &MismatchedParenthesesError{Col: tok.Pos, Right: ")"}
				}
				op := stack.pop()
				if op.Kind == TokenOpen {
					break
				}
				out = append(out, op)
			}
			// A function before the group takes the group as its argument.
			if !stack.empty() && stack.top().callable() {
				out = append(out, stack.pop())
			}
		default:
			// Prefix operators and functions have no left operand, so
			// nothing on the stack can be complete yet.
			if !tok.prefix() {
				for !stack.empty() && popsBefore(tok, stack.top()) {
					out = append(out, stack.pop())
				}
			}
			stack.push(tok)
		}
	}
	for !stack.empty() {
		op := stack.pop()
		switch {
		case op.callable():
			return nil, &DanglingFunctionError{Col: op.Pos, Func: op.String()}
		case op.Kind == TokenOpen:
			// Only reachable when the input was not normalized.
			return nil, &MismatchedParenthesesError{Col: op.Pos, Left: "("}
		}
		out = append(out, op)
	}
	return out, nil
}

// popsBefore reports whether p, the top of the operator stack, must move to
// the output before t is pushed.
func popsBefore(t, p Token) bool {
	if t.RightAssoc() {
		return t.Prec() < p.Prec()
	}
	return t.Prec() <= p.Prec()
}

// opstack is the operator stack of the conversion.
type opstack struct {
	s []Token
}

func (o *opstack) push(t Token) {
	o.s = append(o.s, t)
}

// pop removes and returns the top of the stack. Panics if the stack is empty.
func (o *opstack) pop() Token {
	t := o.s[len(o.s)-1]
	o.s = o.s[:len(o.s)-1]
	return t
}

func (o *opstack) top() Token {
	return o.s[len(o.s)-1]
}

func (o *opstack) empty() bool {
	return len(o.s) == 0
}

// Eval evaluates the expression. If radians is false, sin, cos, tan, and cot
// take their arguments in degrees.
func (e *Expr) Eval(radians bool) (float64, error) {
	return Evaluate(e.postfix, radians)
}

// Postfix returns a copy of the expression's tokens in evaluation order.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.postfix...)
}

// Normalized returns the expression as normalized before conversion.
func (e *Expr) Normalized() string {
	return e.src
}

// String creates a string representation of the expression in postfix order
// with tokens separated by spaces. Unary signs are written u+ and u-.
func (e *Expr) String() string {
	var b strings.Builder
	fmtPostfix(&b, e.postfix)
	return b.String()
}
