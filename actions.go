package peg

// Frame is the contiguous tail of the value stack a stack action sees:
// whatever its child pushed, plus any Lookback widening below it.
type Frame []interface{}

// runAction wraps a stack-action body with the guarantee that the body
// must not invoke further parsing. It runs child, and on success computes
// the frame (widened downward by lookback entries already on the stack),
// pops exactly that frame off, and hands it to body. body returning a
// non-nil error becomes a thrown fatal condition rather than an ordinary
// parse failure.
func runAction(name string, child Parser, lookback int, body func(s *State, start int, frame Frame) error) Parser {
	if body == nil {
		panic(errNilConstructor)
	}
	return newKindParser("named", name, []Parser{child}, func(s *State) bool {
		start := s.Pos
		sizeAtEntry := s.Stack.Size()
		if !child.Parse(s) {
			return false
		}

		frameStart := sizeAtEntry - lookback
		if frameStart < 0 {
			return s.abort(errLookbackUnderflow)
		}

		frame := Frame(s.Stack.PopFrom(frameStart))
		posBeforeBody := s.Pos
		err := body(s, start, frame)
		if s.Pos != posBeforeBody {
			return s.abort(errActionParses)
		}
		if err != nil {
			return s.abort(err)
		}
		return true
	})
}

// Push runs child, then replaces the frame it pushed with a single value
// computed by fn.
func Push(name string, child Parser, fn func(s *State, start int, frame Frame) (interface{}, error)) Parser {
	if fn == nil {
		panic(errNilConstructor)
	}
	return runAction(name, child, 0, func(s *State, start int, frame Frame) error {
		v, err := fn(s, start, frame)
		if err != nil {
			return err
		}
		s.Stack.Push(v)
		return nil
	})
}

// Collect runs child, then hands its frame to fn, which may freely push
// zero or more replacement values and/or append log effects.
func Collect(name string, child Parser, fn func(s *State, start int, frame Frame) error) Parser {
	return runAction(name, child, 0, fn)
}

// Lookback extends the frame child's action would normally see by k
// additional entries already on the stack below child's own pushes,
// letting fn combine a previously pushed value (e.g. a left operand)
// with child's output.
func Lookback(name string, child Parser, k int, fn func(s *State, start int, frame Frame) (interface{}, error)) Parser {
	if fn == nil {
		panic(errNilConstructor)
	}
	return runAction(name, child, k, func(s *State, start int, frame Frame) error {
		v, err := fn(s, start, frame)
		if err != nil {
			return err
		}
		s.Stack.Push(v)
		return nil
	})
}

// AsVal runs child, discards whatever it pushed, and pushes the constant
// v instead.
func AsVal(child Parser, v interface{}) Parser {
	return runAction("asVal", child, 0, func(s *State, start int, frame Frame) error {
		s.Stack.Push(v)
		return nil
	})
}

// AsList runs child, then collects its frame into a single slice value
// pushed in place of the individual entries.
func AsList(child Parser) Parser {
	return runAction("asList", child, 0, func(s *State, start int, frame Frame) error {
		list := make([]interface{}, len(frame))
		copy(list, frame)
		s.Stack.Push(list)
		return nil
	})
}

// AsBool runs child, pushing true iff it consumed at least one element of
// input, else false.
func AsBool(child Parser) Parser {
	return runAction("asBool", child, 0, func(s *State, start int, frame Frame) error {
		s.Stack.Push(s.Pos > start)
		return nil
	})
}
