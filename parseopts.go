package rpncalc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option is an option for parsing and evaluating expressions.
type Option interface {
	parseOption(parsectx) parsectx
}

type (
	sepopt rune
	degopt bool
)

// parsectx holds the settings for one call.
type parsectx struct {
	// sep is the decimal separator.
	sep rune
	// degrees indicates that trigonometric functions take degrees.
	degrees bool
}

// DefaultSeparator is the decimal separator used when no DecimalSeparator
// option is given.
const DefaultSeparator = '.'

// DecimalSeparator sets the character that separates the integer and
// fractional parts of numbers. The separator may not be a digit, letter,
// operator, parenthesis, whitespace, or function name. Numbers are parsed the
// same way regardless of the separator; in particular, exponents are always
// written with e.
func DecimalSeparator(sep rune) Option {
	return sepopt(sep)
}

func (o sepopt) parseOption(p parsectx) parsectx {
	p.sep = rune(o)
	return p
}

// Degrees makes evaluation treat the arguments of sin, cos, tan, and cot as
// degrees.
func Degrees() Option {
	return degopt(true)
}

// Radians makes evaluation treat the arguments of sin, cos, tan, and cot as
// radians. This is the default.
func Radians() Option {
	return degopt(false)
}

func (o degopt) parseOption(p parsectx) parsectx {
	p.degrees = bool(o)
	return p
}

// newparsectx applies options in order over the defaults and validates the
// result.
func newparsectx(opts []Option) (parsectx, error) {
	p := parsectx{sep: DefaultSeparator}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	if !validsep(p.sep) {
		return p, &SeparatorError{Sep: p.sep}
	}
	return p, nil
}

// validsep reports whether r can be a decimal separator without clashing
// with any other token.
func validsep(r rune) bool {
	switch {
	case r == utf8.RuneError, r < ' ':
		return false
	case unicode.IsSpace(r), unicode.IsLetter(r), unicode.IsDigit(r):
		return false
	case r == '(', r == ')', strings.ContainsRune(Operators, r):
		return false
	}
	_, fn := words[string(r)]
	return !fn
}
