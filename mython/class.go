package mython

// Method is a named callable owned by a class: an ordered list of
// formal parameter names plus the AST node that forms its body.
type Method struct {
	Name         string
	FormalParams []string
	Body         Statement
}

// Class is a descriptor with a name, a method table, and an optional
// parent for single inheritance. Classes outlive every instance that
// references them; they live for as long as the closure that declared
// them.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// GetMethod walks the parent chain and returns the first method named
// name, or nil if none is found at any level.
func (c *Class) GetMethod(name string) *Method {
	for cls := c; cls != nil; cls = cls.Parent {
		for i := range cls.Methods {
			if cls.Methods[i].Name == name {
				return &cls.Methods[i]
			}
		}
	}
	return nil
}

// ClassInstance references a class plus a mutable field map.
type ClassInstance struct {
	Class  *Class
	Fields map[string]Value
}

// NewClassInstance allocates a fresh instance with no fields set.
func NewClassInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: make(map[string]Value)}
}

// HasMethod reports whether name resolves (through the parent chain)
// to a method whose arity matches argCount.
func (inst *ClassInstance) HasMethod(name string, argCount int) bool {
	m := inst.Class.GetMethod(name)
	return m != nil && len(m.FormalParams) == argCount
}

// Call dispatches name on inst with actualArgs already evaluated,
// binding self non-owning plus the formal parameters positionally in a
// fresh call closure, then executing the method body against it.
func (inst *ClassInstance) Call(ctx *Context, name string, actualArgs []Value) (Value, error) {
	m := inst.Class.GetMethod(name)
	if m == nil || len(m.FormalParams) != len(actualArgs) {
		return NoneValue(), runtimeErrorf(Position{}, "method call error: %s", name)
	}
	call := newClosure()
	call.Define("self", Share(inst))
	for i, param := range m.FormalParams {
		call.Define(param, actualArgs[i])
	}
	value, _, err := m.Body.Execute(call, ctx)
	if err != nil {
		return NoneValue(), withFrame(err, StackFrame{Method: name})
	}
	return value, nil
}
