package arith

import "strconv"

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the token that revealed the mismatch.
	Col int
	// Got is the token found where ) was required, or the empty string if
	// the input ended first.
	Got string
}

func (err *BracketError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "mismatched parentheses: missing )")
	}
	return errpos(err.Col, "mismatched parentheses: "+strconv.Quote(err.Got)+" instead of )")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name that is not followed by
// an open parenthesis. It implements InputError.
type CallError struct {
	// Col is the position following the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "missing ( after function "+err.Func)
}

func (err *CallError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a token that matches no primary
// expression production. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Token is the offending token text.
	Token string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "invalid primary expression at "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input remaining after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Token is the first unconsumed token's text.
	Token string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "trailing input after expression: "+strconv.Quote(err.Token))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
