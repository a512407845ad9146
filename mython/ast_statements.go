package mython

import "io"

// Assignment binds the result of evaluating Value to Name in the
// current closure, creating the entry if absent and overwriting it
// otherwise.
type Assignment struct {
	Name  string
	Value Statement
}

func (a *Assignment) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	value, returned, err := a.Value.Execute(closure, ctx)
	if err != nil || returned {
		return value, returned, err
	}
	closure.Define(a.Name, value)
	return value, false, nil
}

// FieldAssignment evaluates Target, which must resolve to a
// ClassInstance, and sets Field on it to the result of evaluating
// Value.
type FieldAssignment struct {
	Target *VariableValue
	Field  string
	Value  Statement
	Pos    Position
}

func (f *FieldAssignment) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	target, returned, err := f.Target.Execute(closure, ctx)
	if err != nil || returned {
		return target, returned, err
	}
	if target.Kind() != KindInstance {
		return NoneValue(), false, runtimeErrorf(f.Pos, "field assignment target is not an object")
	}
	value, returned, err := f.Value.Execute(closure, ctx)
	if err != nil || returned {
		return value, returned, err
	}
	target.Instance().Fields[f.Field] = value
	return value, false, nil
}

// Print evaluates Args left to right and writes them to ctx's output
// stream separated by single spaces, followed by a newline. An empty
// handle prints as None.
type Print struct {
	Args []Statement
}

func (p *Print) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	out := ctx.Output()
	for i, arg := range p.Args {
		value, returned, err := arg.Execute(closure, ctx)
		if err != nil || returned {
			return value, returned, err
		}
		if i > 0 {
			io.WriteString(out, " ")
		}
		if err := value.Print(ctx); err != nil {
			return NoneValue(), false, err
		}
	}
	io.WriteString(out, "\n")
	return NoneValue(), false, nil
}

// IfElse executes Then when Cond is true, Else when present and Cond
// is false, or returns the empty handle otherwise. The result of the
// executed branch — including any Return signal — propagates upward.
type IfElse struct {
	Cond Statement
	Then Statement
	Else Statement
}

func (i *IfElse) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	cond, returned, err := i.Cond.Execute(closure, ctx)
	if err != nil || returned {
		return cond, returned, err
	}
	if IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return NoneValue(), false, nil
}

// Return evaluates Expr and raises a Return signal carrying the
// result, unwinding until a MethodBody catches it.
type Return struct {
	Expr Statement
}

func (r *Return) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	value, returned, err := r.Expr.Execute(closure, ctx)
	if err != nil || returned {
		return value, returned, err
	}
	return value, true, nil
}

// ClassDefinition inserts Class into the closure under its own name.
type ClassDefinition struct {
	Class *Class
}

func (c *ClassDefinition) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	closure.Define(c.Class.Name, NewClass(c.Class))
	return NoneValue(), false, nil
}

// MethodBody wraps a method's compound body and catches the Return
// signal raised within it, turning it into the method call's own
// result. A return that unwinds past a MethodBody without originating
// inside it is a contradiction in this AST — every method body is
// wrapped by exactly one.
type MethodBody struct {
	Body Statement
}

func (m *MethodBody) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	value, returned, err := m.Body.Execute(closure, ctx)
	if err != nil {
		return NoneValue(), false, err
	}
	if returned {
		return value, false, nil
	}
	return NoneValue(), false, nil
}
