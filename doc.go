// Package rpncalc implements a calculator for arithmetic expressions written
// the way people type them into a form: "2 + 3*4", "-sin(90)", "2^3^2",
// "2log(8)", "√(16) * pi".
//
// An expression goes through three stages. Normalize strips whitespace,
// lowercases letters, and checks that parentheses are balanced. ToPostfix
// scans the normalized text into tokens and reorders them into postfix order
// with the shunting-yard algorithm. Evaluate runs the postfix tokens on a
// value stack. Parse does the first two stages once so that the result can be
// evaluated many times; EvaluateExpression does all three.
//
// Nothing is shared between calls except the built-in function and constant
// tables, which are never modified, so every function in the package is safe
// to call concurrently. The only locale setting is the decimal separator,
// which the caller passes explicitly.
package rpncalc
