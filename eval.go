package rpncalc

import (
	"math"
	"strconv"
)

// evalctx holds the state of one evaluation.
type evalctx struct {
	stack   []float64
	radians bool
}

// push adds a value to the top of the stack.
func (ctx *evalctx) push(v float64) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *evalctx) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get a pointer to the top element of the stack.
func (ctx *evalctx) top() *float64 {
	return &ctx.stack[len(ctx.stack)-1]
}

// Evaluate computes the value of a postfix token stream. If radians is false,
// the arguments of sin, cos, tan, and cot are converted from degrees. Results
// may be infinite or NaN, e.g. cot(0) or sqrt(-1); the only arithmetic error
// is division by exactly zero.
func Evaluate(postfix []Token, radians bool) (float64, error) {
	ctx := evalctx{
		stack:   make([]float64, 0, len(postfix)/2+1),
		radians: radians,
	}
	for _, t := range postfix {
		if err := t.eval(&ctx); err != nil {
			return 0, err
		}
	}
	switch len(ctx.stack) {
	case 0:
		// E.g. "()".
		return 0, &EmptyInputError{}
	case 1:
		return ctx.stack[0], nil
	default:
		return 0, &SurplusOperandError{Count: len(ctx.stack)}
	}
}

// eval applies the token to the context's stack.
func (t Token) eval(ctx *evalctx) error {
	if n := t.Arity(); len(ctx.stack) < n {
		return &MissingOperandError{Col: t.Pos, Op: t.String(), Want: n, Have: len(ctx.stack)}
	}
	switch t.Kind {
	case TokenNum:
		ctx.push(t.Num)
	case TokenUnary:
		if t.Unary == Minus {
			v := ctx.top()
			*v = -*v
		}
	case TokenFunc:
		v := ctx.top()
		*v = t.Func.call(*v, ctx.radians)
	case TokenBinary:
		r := ctx.pop()
		l := ctx.top()
		if t.Binary == Div && r == 0 {
			return &DivisionByZeroError{Col: t.Pos}
		}
		*l = t.Binary.call(*l, r)
	default:
		// Parentheses never reach the output of ToPostfix.
		return &UnknownTokenError{Col: t.Pos, Text: t.String()}
	}
	return nil
}

// call applies a binary operator.
func (op BinaryOp) call(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return math.Pow(l, r)
	case Log:
		// log base l of r. Bases with no logarithm give NaN.
		if l <= 0 || l == 1 || math.IsInf(l, 1) {
			return math.NaN()
		}
		return math.Log2(r) / math.Log2(l)
	default:
		panic("rpncalc: invalid binary operator " + op.String())
	}
}

// call applies a function.
func (f Func) call(x float64, radians bool) float64 {
	if !radians && f.trig() {
		x = x * math.Pi / 180
	}
	switch f {
	case Sqrt:
		return math.Sqrt(x)
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	case Tan:
		return math.Tan(x)
	case Cot:
		// No zero check: cot(0) is +Inf.
		return 1 / math.Tan(x)
	case Sinh:
		return math.Sinh(x)
	case Cosh:
		return math.Cosh(x)
	case Tanh:
		return math.Tanh(x)
	case Ln:
		return math.Log(x)
	case Exp:
		return math.Exp(x)
	case Abs:
		return math.Abs(x)
	case Arcsin:
		return math.Asin(x)
	case Arccos:
		return math.Acos(x)
	case Arctan:
		return math.Atan(x)
	default:
		panic("rpncalc: invalid function " + f.String())
	}
}

// EvalString is a shortcut to parse and evaluate an expression. The Degrees
// and Radians options select the angle mode.
func EvalString(expression string, opts ...Option) (float64, error) {
	e, err := Parse(expression, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval(!e.degrees)
}

// EvaluateExpression parses and evaluates an expression. If useRadians is
// false, the arguments of sin, cos, tan, and cot are in degrees.
// decimalSeparator separates the integer and fractional parts of numbers.
func EvaluateExpression(expression string, useRadians bool, decimalSeparator rune) (float64, error) {
	angles := Radians()
	if !useRadians {
		angles = Degrees()
	}
	return EvalString(expression, angles, DecimalSeparator(decimalSeparator))
}

// DivisionByZeroError is an error indicating a division by exactly zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the /.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// MissingOperandError is an error indicating an operator or function with
// too few operands, as in "2+" or "sin()". It implements InputError.
type MissingOperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator or function.
	Op string
	// Want is the number of operands Op takes.
	Want int
	// Have is the number of operands available.
	Have int
}

func (err *MissingOperandError) Error() string {
	return errpos(err.Col, err.Op+" needs "+strconv.Itoa(err.Want)+" operands but has "+strconv.Itoa(err.Have))
}

func (err *MissingOperandError) Pos() int {
	return err.Col
}

// SurplusOperandError is an error indicating values with no operator to
// combine them, as in "2(3)".
type SurplusOperandError struct {
	// Count is the number of values left after evaluation.
	Count int
}

func (err *SurplusOperandError) Error() string {
	return "surplus operand: " + strconv.Itoa(err.Count) + " values left instead of 1"
}
