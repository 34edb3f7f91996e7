package peg

import "time"

// MetricsSink receives per-parser counters when Options.Trace is set. The
// invoked node's RuleName (its Rule label, or the generic display name of
// an unnamed node) identifies which parser a sample belongs to.
type MetricsSink interface {
	// RecordInvocation is called once per combinator invocation,
	// reporting whether it ultimately succeeded.
	RecordInvocation(rule string, ok bool)

	// RecordDuration is called once per combinator invocation with the
	// wall-clock time spent in it, including its children.
	RecordDuration(rule string, d time.Duration)
}

// NoopMetrics discards every sample. It is never installed implicitly —
// Options.Metrics is nil unless a caller supplies a sink — but grammars
// that want to pass a non-nil sink unconditionally can default to this
// one instead of special-casing nil.
type NoopMetrics struct{}

func (NoopMetrics) RecordInvocation(string, bool)       {}
func (NoopMetrics) RecordDuration(string, time.Duration) {}

// CounterMetrics is a small in-memory MetricsSink, grouping invocation
// counts, success counts and cumulative duration by rule name. It is the
// sink cmd/pegrun installs when --trace is passed.
type CounterMetrics struct {
	Invocations map[string]int
	Successes   map[string]int
	Durations   map[string]time.Duration
}

// NewCounterMetrics returns a ready-to-use CounterMetrics.
func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{
		Invocations: make(map[string]int),
		Successes:   make(map[string]int),
		Durations:   make(map[string]time.Duration),
	}
}

func (m *CounterMetrics) RecordInvocation(rule string, ok bool) {
	m.Invocations[rule]++
	if ok {
		m.Successes[rule]++
	}
}

func (m *CounterMetrics) RecordDuration(rule string, d time.Duration) {
	m.Durations[rule] += d
}
