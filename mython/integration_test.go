package mython

import "testing"

func TestArithmeticAndPrintScenario(t *testing.T) {
	out, err := runSource("print 1 + 2 * 3\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestClassWithStrScenario(t *testing.T) {
	source := "class P:\n  def __str__(self):\n    return \"p\"\n" +
		"x = P()\nprint x\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "p\n" {
		t.Fatalf("got %q, want %q", out, "p\n")
	}
}

func TestInheritedMethodDispatch(t *testing.T) {
	source := "class Animal:\n  def speak(self):\n    return \"...\"\n" +
		"class Dog(Animal):\n  def __str__(self):\n    return self.speak()\n" +
		"d = Dog()\nprint d\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "...\n" {
		t.Fatalf("got %q, want %q", out, "...\n")
	}
}

func TestFieldAssignmentAndAccess(t *testing.T) {
	source := "class Counter:\n  def __init__(self):\n    self.n = 0\n  def inc(self):\n    self.n = self.n + 1\n" +
		"c = Counter()\nc.inc()\nc.inc()\nprint c.n\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Fatalf("got %q, want %q", out, "2\n")
	}
}

func TestUserDefinedEqAndLt(t *testing.T) {
	source := "class Box:\n  def __init__(self, v):\n    self.v = v\n" +
		"  def __eq__(self, other):\n    return self.v == other.v\n" +
		"  def __lt__(self, other):\n    return self.v < other.v\n" +
		"a = Box(1)\nb = Box(2)\nprint a == b\nprint a < b\nprint a > b\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "False\nTrue\nFalse\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestUserDefinedAdd(t *testing.T) {
	source := "class Vec:\n  def __init__(self, v):\n    self.v = v\n" +
		"  def __add__(self, other):\n    return self.v + other.v\n" +
		"  def __str__(self):\n    return Stringify(self.v)\n" +
		"a = Vec(1)\nb = Vec(2)\nprint a + b\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestNonShortCircuitBooleanOperatorsEvaluateBothSides(t *testing.T) {
	// True or <rhs> is True regardless of <rhs>; a short-circuiting `or`
	// would never evaluate the right operand, so the side effect below
	// would not fire.
	source := "class Loud:\n  def sideEffect(self):\n    print \"evaluated\"\n    return True\n" +
		"l = Loud()\nprint True or l.sideEffect()\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "evaluated\nTrue\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runSource("print 1 / 0\n")
	if err == nil {
		t.Fatalf("expected a runtime error for division by zero")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestTopLevelReturnIsRuntimeError(t *testing.T) {
	_, err := runSource("return 1\n")
	if err == nil {
		t.Fatalf("expected a runtime error for a return outside any method")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestMissingVariableIsRuntimeError(t *testing.T) {
	_, err := runSource("print missing\n")
	if err == nil {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
}

func TestMissingDottedFieldReadsAsNone(t *testing.T) {
	source := "class Empty:\n  def __init__(self):\n    pass = 1\n" +
		"e = Empty()\nprint e.nope\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "None\n" {
		t.Fatalf("got %q, want %q", out, "None\n")
	}
}

func TestReturnUnwindsThroughNestedIf(t *testing.T) {
	source := "class Sign:\n  def of(self, n):\n    if n < 0:\n      return \"negative\"\n    else:\n      if n == 0:\n        return \"zero\"\n    return \"positive\"\n" +
		"s = Sign()\nprint s.of(0 - 5)\nprint s.of(0)\nprint s.of(5)\n"
	out, err := runSource(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "negative\nzero\npositive\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
