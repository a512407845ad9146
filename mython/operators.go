package mython

// ComparisonOp names one of the six derived comparators a Comparison
// node evaluates.
type ComparisonOp int

const (
	OpEqual ComparisonOp = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessOrEqual
	OpGreaterOrEqual
)

// Or evaluates both operands unconditionally — no short-circuit — and
// returns whether either is true.
type Or struct {
	Lhs Statement
	Rhs Statement
}

func (o *Or) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	lhs, rhs, returned, err := evalPair(o.Lhs, o.Rhs, closure, ctx)
	if err != nil || returned {
		return lhs, returned, err
	}
	return NewBool(IsTrue(lhs) || IsTrue(rhs)), false, nil
}

// And evaluates both operands unconditionally — no short-circuit — and
// returns whether both are true.
type And struct {
	Lhs Statement
	Rhs Statement
}

func (a *And) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	lhs, rhs, returned, err := evalPair(a.Lhs, a.Rhs, closure, ctx)
	if err != nil || returned {
		return lhs, returned, err
	}
	return NewBool(IsTrue(lhs) && IsTrue(rhs)), false, nil
}

// Not returns the negation of Arg's truth value.
type Not struct {
	Arg Statement
}

func (n *Not) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	value, returned, err := n.Arg.Execute(closure, ctx)
	if err != nil || returned {
		return value, returned, err
	}
	return NewBool(!IsTrue(value)), false, nil
}

// Comparison evaluates Lhs and Rhs and applies Op, one of the six
// derived comparators built on Equal and Less.
type Comparison struct {
	Op  ComparisonOp
	Lhs Statement
	Rhs Statement
}

func (c *Comparison) Execute(closure *Closure, ctx *Context) (Value, bool, error) {
	lhs, rhs, returned, err := evalPair(c.Lhs, c.Rhs, closure, ctx)
	if err != nil || returned {
		return lhs, returned, err
	}
	var result bool
	switch c.Op {
	case OpEqual:
		result, err = Equal(lhs, rhs, ctx)
	case OpNotEqual:
		result, err = NotEqual(lhs, rhs, ctx)
	case OpLess:
		result, err = Less(lhs, rhs, ctx)
	case OpGreater:
		result, err = Greater(lhs, rhs, ctx)
	case OpLessOrEqual:
		result, err = LessOrEqual(lhs, rhs, ctx)
	case OpGreaterOrEqual:
		result, err = GreaterOrEqual(lhs, rhs, ctx)
	}
	if err != nil {
		return NoneValue(), false, err
	}
	return NewBool(result), false, nil
}
