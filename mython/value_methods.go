package mython

import "fmt"

// IsTrue coerces v to truth. It never fails: Bool reflects its own
// value, Number is true iff nonzero, String is true iff non-empty, and
// everything else (None, Class, ClassInstance, and the empty handle)
// is false.
func IsTrue(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number != 0
	case KindString:
		return v.text != ""
	default:
		return false
	}
}

// Print writes v's textual form to ctx's output stream. A
// ClassInstance defers to its zero-arity __str__ if it defines one;
// otherwise it prints an unspecified identity token.
func (v Value) Print(ctx *Context) error {
	switch v.kind {
	case KindNone:
		fmt.Fprint(ctx.Output(), "None")
	case KindNumber:
		fmt.Fprintf(ctx.Output(), "%d", v.number)
	case KindString:
		fmt.Fprint(ctx.Output(), v.text)
	case KindBool:
		if v.boolean {
			fmt.Fprint(ctx.Output(), "True")
		} else {
			fmt.Fprint(ctx.Output(), "False")
		}
	case KindClass:
		fmt.Fprintf(ctx.Output(), "Class %s", v.class.Name)
	case KindInstance:
		if v.instance.HasMethod("__str__", 0) {
			result, err := v.instance.Call(NewDummyContext(), "__str__", nil)
			if err != nil {
				return err
			}
			return result.Print(ctx)
		}
		fmt.Fprintf(ctx.Output(), "<%s object at %p>", v.instance.Class.Name, v.instance)
	}
	return nil
}

// Stringified renders v the way Print would, returning the text
// instead of writing it.
func Stringified(v Value, ctx *Context) (string, error) {
	if v.IsNone() {
		return "None", nil
	}
	var sb stringWriter
	sink := NewContext(&sb)
	if err := v.Print(sink); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type stringWriter struct {
	buf []byte
}

func (w *stringWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *stringWriter) String() string { return string(w.buf) }

// Equal implements value equality, including a user-defined __eq__ for
// two ClassInstances. Two empty/None handles compare equal.
func Equal(l, r Value, ctx *Context) (bool, error) {
	if l.kind == KindBool && r.kind == KindBool {
		return l.boolean == r.boolean, nil
	}
	if l.kind == KindString && r.kind == KindString {
		return l.text == r.text, nil
	}
	if l.kind == KindNumber && r.kind == KindNumber {
		return l.number == r.number, nil
	}
	if l.kind == KindInstance && r.kind == KindInstance {
		result, err := l.instance.Call(ctx, "__eq__", []Value{r})
		if err != nil {
			return false, err
		}
		if result.Kind() != KindBool {
			return false, runtimeErrorf(Position{}, "__eq__ must return a bool")
		}
		return result.boolean, nil
	}
	if l.IsNone() && r.IsNone() {
		return true, nil
	}
	return false, runtimeErrorf(Position{}, "different types compared")
}

// Less implements value ordering, including a user-defined __lt__ for
// two ClassInstances. Comparing two empty handles is a runtime failure.
func Less(l, r Value, ctx *Context) (bool, error) {
	if l.kind == KindBool && r.kind == KindBool {
		return !l.boolean && r.boolean, nil
	}
	if l.kind == KindString && r.kind == KindString {
		return l.text < r.text, nil
	}
	if l.kind == KindNumber && r.kind == KindNumber {
		return l.number < r.number, nil
	}
	if l.kind == KindInstance && r.kind == KindInstance {
		result, err := l.instance.Call(ctx, "__lt__", []Value{r})
		if err != nil {
			return false, err
		}
		if result.Kind() != KindBool {
			return false, runtimeErrorf(Position{}, "__lt__ must return a bool")
		}
		return result.boolean, nil
	}
	return false, runtimeErrorf(Position{}, "different types compared")
}

// NotEqual is the negation of Equal.
func NotEqual(l, r Value, ctx *Context) (bool, error) {
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater is !(Less || Equal); if either underlying call raises for
// ClassInstance operands, Greater raises too.
func Greater(l, r Value, ctx *Context) (bool, error) {
	less, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return false, nil
	}
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual is !Greater.
func LessOrEqual(l, r Value, ctx *Context) (bool, error) {
	gt, err := Greater(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual is !Less.
func GreaterOrEqual(l, r Value, ctx *Context) (bool, error) {
	less, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
