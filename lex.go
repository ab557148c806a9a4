package rpncalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators. + and -
// are unary where no operand precedes them and binary otherwise.
const Operators = "+-*/^"

// lexer splits a normalized expression into infix tokens.
type lexer struct {
	src []rune
	// pos is the index of the next rune to scan.
	pos int
	// sep is the decimal separator.
	sep rune
	// prev is the last token scanned, used to tell unary + and - from
	// binary ones.
	prev Token
	buf  strings.Builder
}

func lex(src string, sep rune) *lexer {
	return &lexer{
		src: []rune(src),
		sep: sep,
	}
}

// next scans the next token from the input. At the end of input the result
// is io.EOF.
func (l *lexer) next() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{}, io.EOF
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.prev = tok
	return tok, nil
}

func (l *lexer) scan() (Token, error) {
	r := l.src[l.pos]
	tok := Token{Pos: l.pos + 1}
	switch {
	case r == '(':
		l.pos++
		tok.Kind = TokenOpen
	case r == ')':
		l.pos++
		tok.Kind = TokenClose
	case strings.ContainsRune(Operators, r):
		l.pos++
		tok.Kind = TokenBinary
		switch r {
		case '+':
			tok.Binary = Add
			if !l.prev.endsOperand() {
				tok.Kind, tok.Binary, tok.Unary = TokenUnary, BinaryNone, Plus
			}
		case '-':
			tok.Binary = Sub
			if !l.prev.endsOperand() {
				tok.Kind, tok.Binary, tok.Unary = TokenUnary, BinaryNone, Minus
			}
		case '*':
			tok.Binary = Mul
		case '/':
			tok.Binary = Div
		case '^':
			tok.Binary = Pow
		}
	case unicode.IsLetter(r), isword(r):
		return l.scanWord(tok)
	case isdigit(r), r == l.sep:
		return l.scanNum(tok)
	default:
		l.pos++
		return tok, &UnknownTokenError{Col: tok.Pos, Text: string(r)}
	}
	return tok, nil
}

// scanWord scans a function or constant name. The first rune may be a
// non-letter that is a name by itself, like √.
func (l *lexer) scanWord(tok Token) (Token, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && unicode.IsLetter(l.src[l.pos]) {
		l.pos++
	}
	name := string(l.src[start:l.pos])
	if t, ok := words[name]; ok {
		t.Pos = tok.Pos
		return t, nil
	}
	if v, ok := constants[name]; ok {
		tok.Kind = TokenNum
		tok.Num = v
		return tok, nil
	}
	return tok, &UnknownSymbolError{Col: tok.Pos, Name: name}
}

// scanNum scans digits, an optional fractional part after the decimal
// separator, and an optional exponent. The exponent is only taken when e is
// followed by digits, possibly signed, so that 2e is 2 times e.
func (l *lexer) scanNum(tok Token) (Token, error) {
	defer l.buf.Reset()
	l.digits()
	if l.pos < len(l.src) && l.src[l.pos] == l.sep {
		l.pos++
		l.buf.WriteByte('.')
		l.digits()
	}
	if l.exponent() {
		l.buf.WriteByte('e')
		l.pos++
		// exponent guarantees a digit follows any sign.
		if r := l.src[l.pos]; r == '+' || r == '-' {
			l.buf.WriteRune(r)
			l.pos++
		}
		l.digits()
	}
	text := l.buf.String()
	if text == "." {
		return tok, &UnknownTokenError{Col: tok.Pos, Text: string(l.sep)}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out of range values are infinite, which is fine. Anything else
		// is malformed.
		return tok, &UnknownTokenError{Col: tok.Pos, Text: string(l.src[tok.Pos-1 : l.pos])}
	}
	tok.Kind = TokenNum
	tok.Num = v
	return tok, nil
}

// digits consumes a run of decimal digits into buf.
func (l *lexer) digits() {
	for l.pos < len(l.src) && isdigit(l.src[l.pos]) {
		l.buf.WriteRune(l.src[l.pos])
		l.pos++
	}
}

// exponent reports whether the input at pos is an exponent marker followed by
// an optionally signed integer.
func (l *lexer) exponent() bool {
	s := l.src[l.pos:]
	if len(s) < 2 || s[0] != 'e' && s[0] != 'E' {
		return false
	}
	if isdigit(s[1]) {
		return true
	}
	return len(s) >= 3 && (s[1] == '+' || s[1] == '-') && isdigit(s[2])
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isword reports whether r is a name by itself even though it is not a
// letter.
func isword(r rune) bool {
	if unicode.IsLetter(r) {
		return false
	}
	_, ok := words[string(r)]
	return ok
}
