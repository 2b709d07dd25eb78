package core

import (
	"testing"
)

func TestSessionKeepsBindings(t *testing.T) {
	s := NewSession()

	lines := []struct {
		input    string
		expected string
	}{
		{"let x = 5;", ""},
		{"let y = fn() { let x = 10; x; };", ""},
		{"y();", "10"},
		{"x;", "5"},
		{"let newAdder = fn(x) { fn(y) { x + y }; };", ""},
		{"let addTwo = newAdder(2);", ""},
		{"addTwo(3);", "5"},
		{"foobar;", "ERROR: identifier not found: foobar"},
		{"x + addTwo(x)", "12"},
	}

	for _, line := range lines {
		v, diagnostics := s.Eval(line.input)
		if len(diagnostics) != 0 {
			t.Fatalf("%q: unexpected diagnostics %v", line.input, diagnostics)
		}
		if v.String() != line.expected {
			t.Errorf("%q: expected %q, got %q", line.input, line.expected, v.String())
		}
	}
}

func TestSessionDoesNotBindReturns(t *testing.T) {
	s := NewSession()

	v, _ := s.Eval("let x = if (true) { return 5; };")
	if v.String() != "5" {
		t.Errorf("expected the return to end the input with 5, got %v", v)
	}

	v, _ = s.Eval("x + 1")
	if v.String() != "ERROR: identifier not found: x" {
		t.Errorf("x should never have been bound, got %v", v)
	}
}

func TestSessionSkipsEvaluationOnDiagnostics(t *testing.T) {
	s := NewSession()

	if _, diagnostics := s.Eval("let x = 1;"); len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", diagnostics)
	}

	v, diagnostics := s.Eval("let x = 2; let = 3;")
	if len(diagnostics) == 0 {
		t.Fatal("expected diagnostics")
	}
	if v != nil {
		t.Errorf("expected no value, got %v", v)
	}

	v, _ = s.Eval("x")
	if v.String() != "1" {
		t.Errorf("a line with diagnostics must not be evaluated, x is %v", v)
	}
}

func TestSessionSurvivesErrors(t *testing.T) {
	s := NewSession()

	s.Eval("let a = 1;")
	if v, _ := s.Eval("let b = a + true;"); !IsError(v) {
		t.Fatalf("expected an error, got %v", v)
	}
	if _, ok := s.Env().Get("b"); ok {
		t.Error("b must not be bound after a failed let")
	}
	if v, _ := s.Eval("a + 1"); v.String() != "2" {
		t.Errorf("session should still work after an error, got %v", v)
	}
}

func TestSessionWithEnv(t *testing.T) {
	env := NewEnvironment()
	env.Set("seed", IntValue(41))

	v, _ := NewSessionWithEnv(env).Eval("seed + 1")
	if v != IntValue(42) {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestInterpret(t *testing.T) {
	v, diagnostics := Interpret("if (true) { return 10; } return 1;")
	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", diagnostics)
	}
	if v != IntValue(10) {
		t.Errorf("expected 10, got %v", v)
	}

	_, diagnostics = Interpret("let ;")
	if len(diagnostics) == 0 {
		t.Error("expected diagnostics")
	}
}
