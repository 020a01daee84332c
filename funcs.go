package arith

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. Functions may not look up
// variables; their arguments are evaluated before the call.
type Func interface {
	// Call evaluates the function on args. args has a length for which
	// CanCall returned true. Call may modify the elements of args.
	Call(args []float64) float64

	// CanCall returns whether the function can be called with n arguments.
	// The evaluator rejects a call whose argument count CanCall refuses
	// with an ArityError.
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	"pow": Binary(math.Pow),
	"abs": Unary(math.Abs),
	"max": Binary(math.Max),
	"min": Binary(math.Min),
}

type unary struct {
	f func(float64) float64
}

func (u unary) Call(args []float64) float64 {
	return u.f(args[0])
}

func (u unary) CanCall(n int) bool {
	return n == 1
}

// Unary wraps a function of one variable into a Func.
func Unary(f func(float64) float64) Func {
	return unary{f}
}

type binary struct {
	f func(a, b float64) float64
}

func (b binary) Call(args []float64) float64 {
	return b.f(args[0], args[1])
}

func (b binary) CanCall(n int) bool {
	return n == 2
}

// Binary wraps a function of two variables into a Func.
func Binary(f func(a, b float64) float64) Func {
	return binary{f}
}

// ArityError is an error indicating a function call with an argument count
// the function does not accept.
type ArityError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}
