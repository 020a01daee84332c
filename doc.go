// Package arith implements a small arithmetic expression evaluator.
//
// An expression is a single line of text containing numeric literals, the
// four binary operators + - * /, parentheses, variable references, and
// calls to the built-in functions pow, abs, max, and min. "2 + 3 * 4"
// evaluates to 14; "pow(2, 10)" evaluates to 1024.
//
// Arithmetic follows IEEE-754 double precision semantics, so dividing by
// zero yields an infinity or NaN rather than an error.
//
// Variables let you parse an expression once and evaluate it for many
// inputs, or you can clone contexts for several expressions to share the
// same variable definitions.
package arith
