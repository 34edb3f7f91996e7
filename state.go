package peg

// State is the authoritative, mutable context for exactly one parse run.
// It is created per Parse invocation and discarded when the result is
// returned; it must never be shared between concurrent parses, though the
// Parser graph it runs against may be.
type State struct {
	Input Input
	Pos   int

	Stack ValueStack
	Log   EffectLog

	// ErrorPos is the furthest position at which any combinator has
	// failed so far; it is monotonically non-decreasing for the lifetime
	// of a parse.
	ErrorPos int

	// ErrorCallStack snapshots CallStack at the moment ErrorPos last
	// advanced. Only populated when Options.RecordCallStack is set.
	ErrorCallStack []string

	// CallStack is the live stack of rule names currently being invoked.
	// Only maintained when Options.RecordCallStack is set.
	CallStack []string

	// depth is the live nesting count of combinator invocations,
	// tracked unconditionally (unlike CallStack) so Options.CallStackLimit
	// protects a parse even without call-stack recording enabled.
	depth int

	Options Options

	// WhitespaceSpans records the spans consumed as trailing whitespace by
	// Token, in order, when Options.TrackWhitespace is set.
	WhitespaceSpans []Span

	// Thrown holds a user-raised fatal condition, if any. Once set, every
	// combinator's wrapper returns false immediately without further
	// work.
	Thrown error

	Metrics MetricsSink

	// Custom mirrors Options.Custom, explicit on State so combinators
	// that close over *State don't need a separate reference to Options.
	Custom map[string]interface{}

	pcalc *positionCalculator
}

// NewState constructs a fresh parse state for a single run of a root
// parser against input, under the given options.
func NewState(input Input, opts Options) *State {
	s := &State{
		Input:   input,
		Options: opts,
		Metrics: opts.Metrics,
		Custom:  opts.Custom,
	}
	if s.Custom == nil {
		s.Custom = make(map[string]interface{})
	}
	return s
}

// Position resolves a byte offset to line/column. Only meaningful over a
// character-sequence Input; for token-sequence input it resolves against
// the token's own Start offset (callers should pass a token's Start, not
// its index).
func (s *State) Position(offset int) Position {
	if s.pcalc == nil {
		s.pcalc = newPositionCalculator(s.sourceText())
	}
	return s.pcalc.resolve(offset)
}

func (s *State) sourceText() string {
	if ti, ok := s.Input.(*TokenInput); ok {
		return ti.source
	}
	return s.Input.Text(0, s.Input.Len())
}

// span returns the text consumed between start and the current position.
func (s *State) span(start int) string {
	return s.Input.Text(start, s.Pos)
}

// noteFailure records that a combinator failed while positioned at pos,
// advancing ErrorPos/ErrorCallStack if pos is the new furthest failure.
func (s *State) noteFailure(pos int) {
	if pos > s.ErrorPos {
		s.ErrorPos = pos
		if s.Options.RecordCallStack {
			s.ErrorCallStack = append([]string(nil), s.CallStack...)
		}
	}
}

// pushCall/popCall maintain the live call stack when call-stack recording
// is enabled. They are no-ops otherwise so the hot path pays nothing for
// a feature the caller didn't ask for.
func (s *State) pushCall(name string) {
	if s.Options.RecordCallStack {
		s.CallStack = append(s.CallStack, name)
	}
}

func (s *State) popCall() {
	if s.Options.RecordCallStack && len(s.CallStack) > 0 {
		s.CallStack = s.CallStack[:len(s.CallStack)-1]
	}
}
