package peg

// Result is the outcome of one parse run. When Success and FullMatch are
// both true, Stack holds the final value stack, usually a single AST
// root.
type Result struct {
	Success   bool
	FullMatch bool
	MatchSize int

	Stack []interface{}

	ErrorPosition  int
	ErrorCallStack []string

	Thrown error

	// Diagnostics holds the well-formedness diagnostics that prevented
	// the parse from running, if Options.WellFormednessCheck found any.
	// Success is false and the root parser was never invoked.
	Diagnostics []Diagnostic
}

// Parse constructs a fresh parse state, optionally runs the
// well-formedness checker, invokes root, and builds a Result. It never
// mutates root or any node reachable from it.
func Parse(root Parser, input Input, opts Options) Result {
	if root == nil {
		return Result{Thrown: errNilRootParser}
	}

	if opts.WellFormednessCheck {
		if diags := Check(root); len(diags) > 0 {
			return Result{Diagnostics: diags}
		}
	}

	s := NewState(input, opts)
	ok := root.Parse(s)

	return Result{
		Success:        ok,
		FullMatch:      ok && s.Pos == input.Len(),
		MatchSize:      s.Pos,
		Stack:          append([]interface{}(nil), s.Stack.values...),
		ErrorPosition:  s.ErrorPos,
		ErrorCallStack: s.ErrorCallStack,
		Thrown:         s.Thrown,
	}
}

// RunTwice parses the same input against the same grammar twice, in two
// independent states, and reports whether every field the determinism
// contract covers — success, consumed length, furthest error position,
// and thrown kind — agreed across both runs. A mismatch indicates a
// state-handling bug in a user action, not in the engine itself.
func RunTwice(root Parser, input Input, opts Options) (first, second Result, deterministic bool) {
	first = Parse(root, input, opts)
	second = Parse(root, input, opts)
	return first, second, resultsAgree(first, second)
}

func resultsAgree(a, b Result) bool {
	if a.Success != b.Success || a.FullMatch != b.FullMatch || a.MatchSize != b.MatchSize {
		return false
	}
	if a.ErrorPosition != b.ErrorPosition {
		return false
	}
	if (a.Thrown == nil) != (b.Thrown == nil) {
		return false
	}
	if a.Thrown != nil && a.Thrown.Error() != b.Thrown.Error() {
		return false
	}
	return hashResult(a) == hashResult(b)
}
