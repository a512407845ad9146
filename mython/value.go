package mython

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is a handle to a runtime object: a Number, String, Bool, the
// None unit value, a Class descriptor, or a ClassInstance. It is the
// Go re-expression of the source's reference-counted ObjectHolder: Go's
// garbage collector makes the refcounting itself unnecessary, but the
// shared/non-owning distinction used for binding self is preserved as
// the shared field below so the semantics stay faithful to the source.
type Value struct {
	kind     ValueKind
	number   int64
	text     string
	boolean  bool
	class    *Class
	instance *ClassInstance
	shared   bool
}

// NoneValue returns the None value, which also serves as the empty
// handle (for example, the result of reading a missing field).
func NoneValue() Value { return Value{kind: KindNone} }

// NewNumber constructs an owned Number value.
func NewNumber(n int64) Value { return Value{kind: KindNumber, number: n} }

// NewString constructs an owned String value.
func NewString(s string) Value { return Value{kind: KindString, text: s} }

// NewBool constructs an owned Bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// NewClass constructs a Value holding a class descriptor.
func NewClass(c *Class) Value { return Value{kind: KindClass, class: c} }

// NewInstanceValue owns a freshly allocated instance.
func NewInstanceValue(inst *ClassInstance) Value {
	return Value{kind: KindInstance, instance: inst}
}

// Share returns a non-owning handle to inst, used to bind self for the
// duration of a method call without implying the callee should manage
// the instance's lifetime.
func Share(inst *ClassInstance) Value {
	return Value{kind: KindInstance, instance: inst, shared: true}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether v is the empty handle or the None literal;
// both read as "absent" at use sites (dotted access, print).
func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) Number() int64          { return v.number }
func (v Value) Text() string           { return v.text }
func (v Value) Bool() bool             { return v.boolean }
func (v Value) Class() *Class          { return v.class }
func (v Value) Instance() *ClassInstance { return v.instance }
