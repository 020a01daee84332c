package arith

import (
	"io"
	"strconv"
	"strings"
)

// Context is an environment for evaluating expressions: a mapping from
// variable names to values plus a mapping from function names to their
// implementations. It is not safe to use a Context concurrently.
type Context struct {
	vars  map[string]float64
	funcs map[string]Func
}

// NewContext creates a new evaluation context with the built-in functions
// pow, abs, max, and min bound. The given options are applied in order.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		vars:  make(map[string]float64),
		funcs: make(map[string]Func, len(globalfuncs)),
	}
	for k, v := range globalfuncs {
		ctx.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.ctxOption(&ctx)
	}
	return &ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	ctx.vars[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether the context defines it.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Clone creates a copy of a context and applies options to it. Variable and
// function bindings are copied, so changes to either context do not affect
// the other.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		vars:  make(map[string]float64, len(ctx.vars)),
		funcs: make(map[string]Func, len(ctx.funcs)),
	}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	for k, v := range ctx.funcs {
		n.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.ctxOption(&n)
	}
	return &n
}

// Eval evaluates a parsed expression and returns the result. Unbound
// variable or function references fail with a NameError; a call with an
// argument count its function rejects fails with an ArityError. Division by
// zero is not an error: it yields an infinity or NaN per IEEE-754.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return e.n.eval(ctx)
}

// Eval evaluates the expression with the given context. It is shorthand for
// ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) (float64, error) {
	return ctx.Eval(e)
}

// eval computes the node's value in ctx. Both operands of a binary node are
// always evaluated, left first.
func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		v, ok := ctx.vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(ctx)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		fn := ctx.funcs[n.name]
		if fn == nil {
			return 0, &NameError{Name: n.name, Func: true}
		}
		if !fn.CanCall(len(args)) {
			return 0, &ArityError{Func: n.name, Len: len(args)}
		}
		return fn.Call(args), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		default:
			return l / r, nil
		}
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and evaluate it in a fresh
// context built from the given options.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable or function that is
// missing from the evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Func indicates that the name was referenced as a function.
	Func bool
}

func (err *NameError) Error() string {
	if err.Func {
		return "undefined function: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}
