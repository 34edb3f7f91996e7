package peg

// ValueStack is the ordered sequence of semantic values a grammar's stack
// actions push and consume. Outside of a running combinator, it
// represents the accumulated AST fragments.
type ValueStack struct {
	values []interface{}
}

// Push appends a value to the top of the stack.
func (s *ValueStack) Push(v interface{}) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value. Panics if the stack is empty —
// callers must only pop after confirming Size() > 0.
func (s *ValueStack) Pop() interface{} {
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

// Peek returns the top value without removing it.
func (s *ValueStack) Peek() interface{} {
	return s.values[len(s.values)-1]
}

// Size returns the number of values currently on the stack.
func (s *ValueStack) Size() int {
	return len(s.values)
}

// PopFrom removes and returns every value whose index is >= n, preserving
// order — the "frame" a stack action consumes.
func (s *ValueStack) PopFrom(n int) []interface{} {
	if n < 0 {
		n = 0
	}
	if n > len(s.values) {
		n = len(s.values)
	}
	frame := make([]interface{}, len(s.values)-n)
	copy(frame, s.values[n:])
	s.values = s.values[:n]
	return frame
}

// restore truncates the stack back to a size observed at an earlier
// snapshot, discarding any values pushed since. This is the rollback half
// of the combinator contract and is never partial: either the whole tail
// since the snapshot is discarded, or none of it.
func (s *ValueStack) restore(size int) {
	s.values = s.values[:size]
}
