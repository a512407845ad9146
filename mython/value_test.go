package mython

import "testing"

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"bool true", NewBool(true), true},
		{"bool false", NewBool(false), false},
		{"nonzero number", NewNumber(3), true},
		{"zero number", NewNumber(0), false},
		{"nonempty string", NewString("a"), true},
		{"empty string", NewString(""), false},
		{"none", NoneValue(), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTrue(c.v); got != c.want {
				t.Errorf("IsTrue() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	ctx := NewDummyContext()
	if _, err := Equal(NewNumber(1), NewString("1"), ctx); err == nil {
		t.Fatalf("expected comparing different types to fail")
	}
	eq, err := Equal(NoneValue(), NoneValue(), ctx)
	if err != nil || !eq {
		t.Fatalf("expected two None values to compare equal, got %v, %v", eq, err)
	}
}

func TestLessStringOrdering(t *testing.T) {
	ctx := NewDummyContext()
	less, err := Less(NewString("a"), NewString("b"), ctx)
	if err != nil || !less {
		t.Fatalf(`expected "a" < "b", got %v, %v`, less, err)
	}
}

func TestGreaterIsNegationOfLessOrEqual(t *testing.T) {
	ctx := NewDummyContext()
	gt, err := Greater(NewNumber(5), NewNumber(3), ctx)
	if err != nil || !gt {
		t.Fatalf("expected 5 > 3, got %v, %v", gt, err)
	}
	gt, err = Greater(NewNumber(3), NewNumber(3), ctx)
	if err != nil || gt {
		t.Fatalf("expected 3 > 3 to be false, got %v, %v", gt, err)
	}
}

func TestStringifiedPrimitives(t *testing.T) {
	ctx := NewDummyContext()
	cases := []struct {
		v    Value
		want string
	}{
		{NewNumber(42), "42"},
		{NewString("hi"), "hi"},
		{NewBool(true), "True"},
		{NewBool(false), "False"},
		{NoneValue(), "None"},
	}
	for _, c := range cases {
		got, err := Stringified(c.v, ctx)
		if err != nil {
			t.Fatalf("Stringified: %v", err)
		}
		if got != c.want {
			t.Errorf("Stringified() = %q, want %q", got, c.want)
		}
	}
}

func TestClassGetMethodWalksParentChain(t *testing.T) {
	base := &Class{Name: "Base", Methods: []Method{{Name: "greet", FormalParams: []string{"self"}}}}
	derived := &Class{Name: "Derived", Parent: base}

	m := derived.GetMethod("greet")
	if m == nil {
		t.Fatalf("expected inherited method to resolve through parent chain")
	}
	if derived.GetMethod("missing") != nil {
		t.Fatalf("expected lookup of an undefined method to return nil")
	}
}

func TestClassGetMethodFirstMatchWins(t *testing.T) {
	base := &Class{Name: "Base", Methods: []Method{{Name: "greet", FormalParams: nil}}}
	derived := &Class{
		Name:    "Derived",
		Parent:  base,
		Methods: []Method{{Name: "greet", FormalParams: []string{"self"}}},
	}
	m := derived.GetMethod("greet")
	if m == nil || len(m.FormalParams) != 1 {
		t.Fatalf("expected the overriding method to win, got %#v", m)
	}
}
