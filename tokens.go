package rpncalc

import (
	"strconv"
	"strings"
)

// Token is an element of an expression in either infix or postfix order. Kind
// selects which of the other fields is meaningful.
type Token struct {
	Kind TokenKind
	// Num is the value of a TokenNum, including constants.
	Num float64
	// Binary is the operator of a TokenBinary.
	Binary BinaryOp
	// Unary is the operator of a TokenUnary.
	Unary UnaryOp
	// Func is the function of a TokenFunc.
	Func Func
	// Pos is the 1-based rune column of the token in the normalized
	// expression.
	Pos int
}

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a number or a named constant.
	TokenNum
	// TokenBinary is an operator with two operands.
	TokenBinary
	// TokenUnary is a prefix + or -.
	TokenUnary
	// TokenFunc is a named function of one argument.
	TokenFunc
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenBinary:
		return "Binary"
	case TokenUnary:
		return "Unary"
	case TokenFunc:
		return "Func"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// BinaryOp is an operator taking two operands.
type BinaryOp int8

const (
	BinaryNone BinaryOp = iota
	Add
	Sub
	Mul
	Div
	Pow
	// Log is log base arg1 of arg2. It is written like a function with the
	// base in front: 2log(8).
	Log
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Log:
		return "log"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// UnaryOp is a prefix sign.
type UnaryOp int8

const (
	UnaryNone UnaryOp = iota
	Plus
	Minus
)

func (op UnaryOp) String() string {
	switch op {
	case Plus:
		return "u+"
	case Minus:
		return "u-"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// Func is a built-in function of one argument.
type Func int8

const (
	FuncNone Func = iota
	Sqrt
	Sin
	Cos
	Tan
	Cot
	Sinh
	Cosh
	Tanh
	Ln
	Exp
	Abs
	Arcsin
	Arccos
	Arctan
)

// String returns the canonical name of f.
func (f Func) String() string {
	if f > FuncNone && int(f) < len(funcnames) {
		return funcnames[f]
	}
	return "Func(" + strconv.Itoa(int(f)) + ")"
}

var funcnames = [...]string{
	Sqrt:   "sqrt",
	Sin:    "sin",
	Cos:    "cos",
	Tan:    "tan",
	Cot:    "cot",
	Sinh:   "sinh",
	Cosh:   "cosh",
	Tanh:   "tanh",
	Ln:     "ln",
	Exp:    "exp",
	Abs:    "abs",
	Arcsin: "arcsin",
	Arccos: "arccos",
	Arctan: "arctan",
}

// trig reports whether f takes an angle, and so converts its argument from
// degrees when evaluation is not in radians. Inverse functions take ratios
// and return radians either way.
func (f Func) trig() bool {
	switch f {
	case Sin, Cos, Tan, Cot:
		return true
	}
	return false
}

// Precedence levels. Higher binds tighter.
const (
	precParen = 0
	precAdd   = 2
	precMul   = 4
	precUnary = 6
	precPow   = 8
	precFunc  = 10
	precNotOp = -1
)

// Prec returns the binding strength of the token. Operands and ) have no
// precedence and return -1.
func (t Token) Prec() int {
	switch t.Kind {
	case TokenOpen:
		return precParen
	case TokenBinary:
		switch t.Binary {
		case Add, Sub:
			return precAdd
		case Mul, Div:
			return precMul
		case Pow:
			return precPow
		case Log:
			return precFunc
		}
	case TokenUnary:
		return precUnary
	case TokenFunc:
		if t.Func == Sqrt {
			return precPow
		}
		return precFunc
	}
	return precNotOp
}

// RightAssoc reports whether the token groups right to left. Only ^ does.
func (t Token) RightAssoc() bool {
	return t.Kind == TokenBinary && t.Binary == Pow
}

// Arity returns the number of operands the token consumes during evaluation.
func (t Token) Arity() int {
	switch t.Kind {
	case TokenBinary:
		return 2
	case TokenUnary, TokenFunc:
		return 1
	}
	return 0
}

// callable reports whether the token binds to the parenthesized group that
// follows it.
func (t Token) callable() bool {
	return t.Kind == TokenFunc || t.Kind == TokenBinary && t.Binary == Log
}

// prefix reports whether the token has no left operand.
func (t Token) prefix() bool {
	return t.Kind == TokenUnary || t.callable()
}

// endsOperand reports whether a + or - following the token is binary.
func (t Token) endsOperand() bool {
	return t.Kind == TokenNum || t.Kind == TokenClose
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenBinary:
		return t.Binary.String()
	case TokenUnary:
		return t.Unary.String()
	case TokenFunc:
		return t.Func.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return "$" + t.Kind.String() + "$"
	}
}

// fmtPostfix writes a token stream separated by spaces.
func fmtPostfix(b *strings.Builder, tokens []Token) {
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
}
