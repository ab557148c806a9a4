package rpncalc

import (
	"errors"
	"strings"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		scan := lex("1"+string(r)+"1", DefaultSeparator)
		scan.next()
		tok, err := scan.next()
		if err != nil {
			t.Errorf("scanning %c: %v", r, err)
			continue
		}
		if tok.Kind != TokenBinary || tok.Prec() <= precParen {
			t.Errorf("no binary operator for %c: %#v", r, tok)
		}
	}
}

func TestPrecOrder(t *testing.T) {
	// Each level must bind strictly tighter than the one before.
	order := []Token{
		{Kind: TokenOpen},
		{Kind: TokenBinary, Binary: Add},
		{Kind: TokenBinary, Binary: Mul},
		{Kind: TokenUnary, Unary: Minus},
		{Kind: TokenBinary, Binary: Pow},
		{Kind: TokenFunc, Func: Sin},
	}
	for i := 1; i < len(order); i++ {
		if order[i].Prec() <= order[i-1].Prec() {
			t.Errorf("%v (%d) does not bind tighter than %v (%d)", order[i], order[i].Prec(), order[i-1], order[i-1].Prec())
		}
	}
	if p := (Token{Kind: TokenFunc, Func: Sqrt}).Prec(); p != precPow {
		t.Errorf("sqrt has prec %d, want %d", p, precPow)
	}
	if p := (Token{Kind: TokenBinary, Binary: Log}).Prec(); p != precFunc {
		t.Errorf("log has prec %d, want %d", p, precFunc)
	}
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"paren", "((1))", "1"},
		{"add", "1+2", "1 2 +"},
		{"left-assoc", "1-2-3", "1 2 - 3 -"},
		{"mul-first", "2+3*4", "2 3 4 * +"},
		{"div-left", "8/4/2", "8 4 / 2 /"},
		{"group", "(2+3)*4", "2 3 + 4 *"},
		{"pow-right", "2^3^2", "2 3 2 ^ ^"},
		{"neg", "-3+5", "3 u- 5 +"},
		{"plus", "+3", "3 u+"},
		{"neg-paren", "3-(-5)", "3 5 u- -"},
		{"neg-op", "3--5", "3 5 u- -"},
		{"neg-mul", "2*-3", "2 3 u- *"},
		{"neg-pow", "-2^2", "2 2 ^ u-"},
		{"pow-neg", "2^-2", "2 2 u- ^"},
		{"func", "sin(0)", "0 sin"},
		{"func-expr", "cos(1+2)*3", "1 2 + cos 3 *"},
		{"nested", "sqrt(abs(-16))", "16 u- abs sqrt"},
		{"sqrt-pow", "√(4)^2", "4 sqrt 2 ^"},
		{"log", "2log(8)", "2 8 log"},
		{"log-mul", "2log(8)*3", "2 8 log 3 *"},
		{"func-popped", "sin2+1", "2 sin 1 +"},
		{"const", "2*pi", "2 3.141592653589793 *"},
		{"surplus", "2(3)", "2 3"},
		{"empty-group", "()", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := ToPostfix(c.src)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			var b strings.Builder
			fmtPostfix(&b, toks)
			if got := b.String(); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		err  interface{}
	}{
		{"close-first", ")(", 1, new(*MismatchedParenthesesError)},
		{"close-extra", "(1))+(2", 4, new(*MismatchedParenthesesError)},
		{"open-left", "(1", 1, new(*MismatchedParenthesesError)},
		{"dangling", "sin2", 1, new(*DanglingFunctionError)},
		{"dangling-inner", "1+cos", 3, new(*DanglingFunctionError)},
		{"dangling-log", "2log8", 2, new(*DanglingFunctionError)},
		{"unknown-symbol", "foo(1)", 1, new(*UnknownSymbolError)},
		{"unknown-token", "1#2", 2, new(*UnknownTokenError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := ToPostfix(c.src)
			if err == nil {
				t.Fatalf("%q converted to %v", c.src, toks)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%q: wrong error type %T: %v", c.src, err, err)
			}
			if ie, ok := err.(InputError); !ok || ie.Pos() != c.col {
				t.Errorf("%q: want error at %d, got %v", c.src, c.col, err)
			}
		})
	}
}

func TestPostfixSeparator(t *testing.T) {
	toks, err := ToPostfix("3,5+1", DecimalSeparator(','))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 || toks[0].Num != 3.5 || toks[1].Num != 1 || toks[2].Binary != Add {
		t.Errorf("wrong tokens: %v", toks)
	}
	if _, err := ToPostfix("1", DecimalSeparator('+')); err == nil {
		t.Error("+ accepted as separator")
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"spaces", " 1 + 2 ", "1+2"},
		{"case", "SIN(PI)", "sin(pi)"},
		{"redundant", "((2))*((3))", "2*3"},
		{"alias-tan", "tg(1)", "tan(1)"},
		{"alias-cot", "ctg(1)", "cot(1)"},
		{"alias-sinh", "sh(1)", "sinh(1)"},
		{"alias-cosh", "ch(1)", "cosh(1)"},
		{"alias-tanh", "th(1)", "tanh(1)"},
		{"alias-arctan", "arctg(1)", "atan(1)"},
		{"alias-arcsin", "asin(1)", "arcsin(1)"},
		{"alias-sqrt", "√(2)", "sqrt(2)"},
		{"exp-num", "1e2", "100"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.a)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.a, err)
			}
			b, err := Parse(c.b)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.b, err)
			}
			if a.String() != b.String() {
				t.Errorf("%q and %q differ: %q vs %q", c.a, c.b, a, b)
			}
		})
	}
}
