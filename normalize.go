package rpncalc

import (
	"strings"
	"unicode"
)

// Normalize prepares an expression for ToPostfix. It removes all whitespace,
// lowercases letters, and checks that the expression has as many ( as ). The
// nesting order of parentheses is not checked here; ToPostfix reports a )
// that closes nothing.
func Normalize(expression string) (string, error) {
	if expression == "" {
		return "", &EmptyInputError{}
	}
	var b strings.Builder
	b.Grow(len(expression))
	open, close := 0, 0
	for _, r := range expression {
		switch {
		case r == '(':
			open++
		case r == ')':
			close++
		case unicode.IsSpace(r):
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	if b.Len() == 0 {
		return "", &EmptyInputError{}
	}
	if open != close {
		return "", &UnbalancedParenthesesError{Open: open, Close: close}
	}
	return b.String(), nil
}
