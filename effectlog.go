package peg

// Effect is one reversible mutation of user-owned state. Apply performs
// the mutation; Undo reverses it exactly. Entries are never mutated
// after being appended — only the log itself is truncated, which is how
// backtracking rolls user state back to a checkpoint.
type Effect struct {
	Apply func()
	Undo  func()
}

// EffectLog is the append-only, truncatable log of side effects a grammar
// action has performed against external, user-owned state (e.g. a symbol
// table). Applying entries in order from position i reproduces the live
// state; truncating to length i rolls back to the state at that
// checkpoint.
type EffectLog struct {
	entries []Effect
}

// Append adds an effect to the end of the log and applies it immediately.
func (l *EffectLog) Append(e Effect) {
	l.entries = append(l.entries, e)
	if e.Apply != nil {
		e.Apply()
	}
}

// Len returns the number of entries currently in the log.
func (l *EffectLog) Len() int {
	return len(l.entries)
}

// restore truncates the log back to a length observed at an earlier
// snapshot, undoing every entry appended since, in reverse order (last
// applied, first undone), so that partial composite effects unwind in the
// opposite order they were built up.
func (l *EffectLog) restore(length int) {
	for i := len(l.entries) - 1; i >= length; i-- {
		if undo := l.entries[i].Undo; undo != nil {
			undo()
		}
	}
	l.entries = l.entries[:length]
}
