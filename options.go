package peg

// Options configures a single parse run. The zero value is a usable
// default: no call-stack recording, no well-formedness check, no
// tracing, no whitespace-span tracking.
type Options struct {
	// RecordCallStack, if true, maintains a live call stack as
	// combinators are invoked and popped, and snapshots it into
	// State.ErrorCallStack whenever State.ErrorPos strictly advances.
	RecordCallStack bool

	// WellFormednessCheck, if true, runs the static nullable/left
	// recursion analysis before parsing begins; any diagnostic it
	// produces aborts the parse without invoking the root parser.
	WellFormednessCheck bool

	// Trace, if true, collects per-parser invocation counts and
	// cumulative durations into Metrics.
	Trace bool

	// TrackWhitespace, if true, records the span consumed by the
	// configured whitespace parser (see Token in structural.go; Word
	// consumes whitespace without recording it) so
	// callers can compute tighter AST spans that exclude trailing
	// whitespace.
	TrackWhitespace bool

	// CallStackLimit bounds the depth of nested combinator invocations;
	// zero or negative means unlimited. A grammar with unprotected left
	// recursion (see WellFormednessCheck) would otherwise recurse until
	// the Go runtime's own goroutine stack is exhausted.
	CallStackLimit int

	// LoopLimit bounds the number of iterations Repetition and SepBy
	// will attempt; zero or negative means unlimited. Guards against a
	// zero-width operand looping forever under an unbounded repetition.
	LoopLimit int

	// Metrics receives per-parser counters when Trace is enabled. May be
	// nil, in which case tracing is a no-op regardless of Trace.
	Metrics MetricsSink

	// Custom holds opaque user key/value pairs accessible to combinators
	// through State.Custom.
	Custom map[string]interface{}
}
