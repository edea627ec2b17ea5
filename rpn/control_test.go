package rpn

import "testing"

func runTokens(t *testing.T, program string) *Stack {
	t.Helper()
	var s Stack
	if err := EvaluateTokens(&s, nil, splitTokens(program), 0); err != nil {
		t.Fatalf("EvaluateTokens(%q) unexpected error: %v", program, err)
	}
	return &s
}

func TestNestedIfInsideIf(t *testing.T) {
	s := runTokens(t, "1 if 1 if 10 else 20 endif else 30 endif")
	top, _ := s.At(0)
	if real(top.Value) != 10 {
		t.Errorf("got %v, want 10", top.Value)
	}

	s2 := runTokens(t, "1 if 0 if 10 else 20 endif else 30 endif")
	top2, _ := s2.At(0)
	if real(top2.Value) != 20 {
		t.Errorf("got %v, want 20", top2.Value)
	}
}

func TestIfWithoutElseFalseSkipsBranch(t *testing.T) {
	s := runTokens(t, "5 0 if 99 endif")
	top, _ := s.At(0)
	if real(top.Value) != 5 {
		t.Errorf("got %v, want 5 (branch should not have run)", top.Value)
	}
}

func TestBeginWhileRepeat(t *testing.T) {
	s := runTokens(t, "0 begin dup 5 lt while 1 + repeat")
	top, _ := s.At(0)
	if real(top.Value) != 5 {
		t.Errorf("got %v, want 5", top.Value)
	}
}

func TestBeginUntilContainingIf(t *testing.T) {
	s := runTokens(t, "0 begin 1 + dup 3 ge if 100 else 0 endif drop dup 3 ge until")
	top, _ := s.At(0)
	if real(top.Value) != 3 {
		t.Errorf("got %v, want 3", top.Value)
	}
}

func TestUnmatchedElseIsAnError(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 else 2 endif"), 0)
	if err != ErrUnmatchedControlStatement {
		t.Errorf("expected ErrUnmatchedControlStatement, got %v", err)
	}
}

func TestUnmatchedUntilIsAnError(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 until"), 0)
	if err != ErrUnmatchedControlStatement {
		t.Errorf("expected ErrUnmatchedControlStatement, got %v", err)
	}
}

func TestIfMissingEndifIsAnError(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 if 2"), 0)
	if err != ErrUnmatchedControlStatement {
		t.Errorf("expected ErrUnmatchedControlStatement, got %v", err)
	}
}

func TestDispatchTokenUnrecognized(t *testing.T) {
	var s Stack
	if err := dispatchToken(&s, nil, "#$%"); err != ErrTokenUnrecognized {
		t.Errorf("expected ErrTokenUnrecognized, got %v", err)
	}
}

func TestIfRejectsDimensionedFlag(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 m if 1 endif"), 0)
	if err != ErrMustBeUnitless {
		t.Errorf("expected ErrMustBeUnitless, got %v", err)
	}
}

func TestUntilRejectsDimensionedFlag(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 m begin until"), 0)
	if err != ErrMustBeUnitless {
		t.Errorf("expected ErrMustBeUnitless, got %v", err)
	}
}

func TestWhileRejectsDimensionedFlag(t *testing.T) {
	var s Stack
	err := EvaluateTokens(&s, nil, splitTokens("1 m begin while repeat"), 0)
	if err != ErrMustBeUnitless {
		t.Errorf("expected ErrMustBeUnitless, got %v", err)
	}
}
