package peg

import "testing"

func TestParseFullMatch(t *testing.T) {
	p := Push("digits", Repetition(RuneRange([2]rune{'0', '9'}), 1, -1), func(s *State, start int, frame Frame) (interface{}, error) {
		return s.Input.Text(start, s.Pos), nil
	})
	result := Parse(p, NewStringInput("123"), Options{})
	if !result.Success || !result.FullMatch {
		t.Fatalf("Parse = %+v, want success+full match", result)
	}
	if result.Stack[0] != "123" {
		t.Errorf("Stack[0] = %v, want %q", result.Stack[0], "123")
	}
}

func TestParsePartialMatchIsNotFullMatch(t *testing.T) {
	result := Parse(Literal("a"), NewStringInput("ab"), Options{})
	if !result.Success || result.FullMatch {
		t.Fatalf("Parse = %+v, want success without full match", result)
	}
}

func TestParseNilRootIsThrown(t *testing.T) {
	result := Parse(nil, NewStringInput(""), Options{})
	if result.Thrown == nil {
		t.Fatalf("expected Thrown to be set for a nil root parser")
	}
}

func TestParseWellFormednessCheckBlocksMalformedGrammar(t *testing.T) {
	var self Parser
	ref := Lazy(func() Parser { return self })
	self = newKindParser("exprLeftmost", "bad", []Parser{ref}, func(s *State) bool { return ref.Parse(s) })
	result := Parse(self, NewStringInput("x"), Options{WellFormednessCheck: true})
	if len(result.Diagnostics) == 0 {
		t.Fatalf("expected diagnostics for unprotected left recursion")
	}
	if result.Success {
		t.Errorf("a malformed grammar must never invoke the root parser")
	}
}

func TestRunTwiceAgreesOnDeterministicGrammar(t *testing.T) {
	p := Push("number", Repetition(RuneRange([2]rune{'0', '9'}), 1, -1), func(s *State, start int, frame Frame) (interface{}, error) {
		return s.Input.Text(start, s.Pos), nil
	})
	_, _, deterministic := RunTwice(p, NewStringInput("42"), Options{})
	if !deterministic {
		t.Errorf("expected a pure grammar to be deterministic across two runs")
	}
}

func TestCallStackLimitAbortsDeepRecursion(t *testing.T) {
	var self Parser
	self = newParser("recur", nil, func(s *State) bool { return self.Parse(s) })
	result := Parse(self, NewStringInput(""), Options{CallStackLimit: 10})
	if result.Thrown == nil {
		t.Fatalf("expected CallStackLimit to abort unbounded recursion")
	}
}

func TestLoopLimitAbortsZeroWidthRepetition(t *testing.T) {
	p := Repetition(Optional(Literal("never")), 0, -1)
	result := Parse(p, NewStringInput(""), Options{LoopLimit: 10})
	if result.Thrown == nil {
		t.Fatalf("expected LoopLimit to abort a zero-width repetition")
	}
}
