package mython

import "io"

// Interpreter holds the single persistent top-level closure a sequence
// of Run calls execute against, letting a REPL build up state across
// calls the way the source program's own top-level scope does.
type Interpreter struct {
	global *Closure
}

// NewInterpreter returns an Interpreter with a fresh, empty top-level
// closure.
func NewInterpreter() *Interpreter {
	return &Interpreter{global: NewTopLevelClosure()}
}

// Run parses source and executes it against the interpreter's
// top-level closure, writing print output to out. A return statement
// reaching module scope (outside any method) is a runtime error.
func (in *Interpreter) Run(source string, out io.Writer) (Value, error) {
	program, err := Parse(source)
	if err != nil {
		return NoneValue(), err
	}
	ctx := NewContext(out)
	value, returned, err := program.Execute(in.global, ctx)
	if err != nil {
		return NoneValue(), err
	}
	if returned {
		return NoneValue(), runtimeErrorf(Position{}, "return outside a method")
	}
	return value, nil
}

// EvalExpression parses and executes source against the interpreter's
// top-level closure and returns the value produced by a top-level
// return statement, the mechanism a REPL uses to surface the value of
// a bare expression line without treating module-scope return as an
// error the way Run does.
func (in *Interpreter) EvalExpression(source string, out io.Writer) (Value, error) {
	program, err := Parse(source)
	if err != nil {
		return NoneValue(), err
	}
	ctx := NewContext(out)
	value, _, err := program.Execute(in.global, ctx)
	if err != nil {
		return NoneValue(), err
	}
	return value, nil
}

// Run parses and executes source once against a fresh top-level
// closure, a convenience for one-shot script execution.
func Run(source string, out io.Writer) (Value, error) {
	return NewInterpreter().Run(source, out)
}
