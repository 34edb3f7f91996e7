package peg

import "testing"

func TestInvokeRestoresStackAndLogOnFailure(t *testing.T) {
	s := NewState(NewStringInput("bar"), Options{})
	s.Stack.Push("marker")
	s.Log.Append(Effect{Apply: func() {}, Undo: func() {}})

	sizeBefore, logBefore := s.Stack.Size(), s.Log.Len()

	p := Sequence(
		Push("push-x", Literal("x"), func(s *State, start int, frame Frame) (interface{}, error) {
			return "x", nil
		}),
		Literal("never"),
	)
	if p.Parse(s) {
		t.Fatalf("expected failure")
	}
	if s.Stack.Size() != sizeBefore || s.Log.Len() != logBefore {
		t.Fatalf("stack/log not restored: size=%d (want %d) log=%d (want %d)",
			s.Stack.Size(), sizeBefore, s.Log.Len(), logBefore)
	}
}

func TestThrownShortCircuitsFurtherInvocations(t *testing.T) {
	s := NewState(NewStringInput("abc"), Options{})
	calls := 0
	tracker := newParser("tracker", nil, func(s *State) bool {
		calls++
		return true
	})

	s.abort(errorf("boom"))
	Sequence(tracker, tracker).Parse(s)

	if calls != 0 {
		t.Fatalf("calls = %d, want 0 (thrown must short-circuit)", calls)
	}
}

func TestRuleLabelsAppearInCallStack(t *testing.T) {
	s := NewState(NewStringInput("xz"), Options{RecordCallStack: true})
	p := Sequence(Literal("x"), Rule("wants-y", Literal("y")))
	p.Parse(s)

	found := false
	for _, name := range s.ErrorCallStack {
		if name == "wants-y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ErrorCallStack = %v, want to contain wants-y", s.ErrorCallStack)
	}
}

func TestLazyResolvesOnceAndSupportsRecursion(t *testing.T) {
	var expr Parser
	resolves := 0
	expr = Lazy(func() Parser {
		resolves++
		return Choice(
			Sequence(Literal("("), Lazy(func() Parser { return expr }), Literal(")")),
			Literal("x"),
		)
	})

	s, ok := runParser(t, expr, "((x))")
	if !ok || s.Pos != 5 {
		t.Fatalf("nested expr: ok=%v pos=%d, want true 5", ok, s.Pos)
	}
	if resolves != 1 {
		t.Fatalf("resolve() called %d times, want 1 (memoized)", resolves)
	}
}
