package rpncalc

import "strconv"

// EmptyInputError is an error indicating an expression with nothing but
// whitespace in it. It implements InputError.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return errpos(1, "no expression")
}

func (err *EmptyInputError) Pos() int {
	return 1
}

// UnbalancedParenthesesError is an error indicating that an expression has
// different numbers of opening and closing parentheses. Only the totals are
// compared; misnested parentheses with equal totals produce a
// MismatchedParenthesesError instead.
type UnbalancedParenthesesError struct {
	// Open and Close are the numbers of ( and ) in the expression.
	Open, Close int
}

func (err *UnbalancedParenthesesError) Error() string {
	return "unbalanced parentheses: " + strconv.Itoa(err.Open) + " ( but " + strconv.Itoa(err.Close) + " )"
}

// UnknownSymbolError is an error indicating a word that is neither a function
// nor a constant. It implements InputError.
type UnknownSymbolError struct {
	// Col is the position of the word.
	Col int
	// Name is the word, lowercased.
	Name string
}

func (err *UnknownSymbolError) Error() string {
	return errpos(err.Col, "unknown symbol "+strconv.Quote(err.Name))
}

func (err *UnknownSymbolError) Pos() int {
	return err.Col
}

// UnknownTokenError is an error indicating a character that cannot start any
// token, or a number made of nothing but a decimal separator. It implements
// InputError.
type UnknownTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the rejected text.
	Text string
}

func (err *UnknownTokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *UnknownTokenError) Pos() int {
	return err.Col
}

// MismatchedParenthesesError is an error indicating a ) with no ( before it
// to close, or a ( never closed. It implements InputError.
type MismatchedParenthesesError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" if an open parenthesis was never closed.
	Left string
	// Right is ")" if a close parenthesis had nothing to close.
	Right string
}

func (err *MismatchedParenthesesError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket ) with no open bracket")
	}
	return errpos(err.Col, "open bracket ( with no close bracket")
}

func (err *MismatchedParenthesesError) Pos() int {
	return err.Col
}

// DanglingFunctionError is an error indicating a function that is not
// followed by a parenthesized argument. It implements InputError.
type DanglingFunctionError struct {
	// Col is the position of the function name.
	Col int
	// Func is the canonical function name.
	Func string
}

func (err *DanglingFunctionError) Error() string {
	return errpos(err.Col, "function "+err.Func+" without parenthesized argument")
}

func (err *DanglingFunctionError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a decimal separator that would be
// ambiguous with other parts of an expression.
type SeparatorError struct {
	// Sep is the rejected separator.
	Sep rune
}

func (err *SeparatorError) Error() string {
	return "invalid decimal separator " + strconv.QuoteRune(err.Sep)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// a problem at a particular place in the input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes of the
	// normalized expression up to and including the start of the token that
	// caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyInputError)(nil)
	_ InputError = (*UnknownSymbolError)(nil)
	_ InputError = (*UnknownTokenError)(nil)
	_ InputError = (*MismatchedParenthesesError)(nil)
	_ InputError = (*DanglingFunctionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*MissingOperandError)(nil)
)
