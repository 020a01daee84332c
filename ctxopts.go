package arith

// ContextOption is an option used when creating or cloning a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	funcopt struct {
		name string
		fn   Func
	}
)

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

func (o varopt) ctxOption(ctx *Context) {
	ctx.vars[o.name] = o.val
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

func (o varsopt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.vars[k] = v
	}
}

// SetFunc replaces a function binding in the context. Only the reserved
// names pow, abs, max, and min parse as calls, so fn is reachable under one
// of those names. Passing nil for fn unbinds the name, which makes calls to
// it fail with a NameError.
func SetFunc(name string, fn Func) ContextOption {
	return funcopt{name, fn}
}

func (o funcopt) ctxOption(ctx *Context) {
	if o.fn == nil {
		delete(ctx.funcs, o.name)
		return
	}
	ctx.funcs[o.name] = o.fn
}
