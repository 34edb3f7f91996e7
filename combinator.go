package peg

import "time"

// Parser is the uniform invocation contract every combinator satisfies.
// Parser graphs are constructed once during grammar definition and may
// be shared across concurrent parses; State is owned by exactly one
// parse.
type Parser interface {
	// Parse attempts to match at s.Pos. On success it returns true,
	// leaves s.Pos at the end of the consumed region, and leaves any
	// value-stack pushes and log appends performed in place. On failure
	// it returns false and restores s.Pos, s.Stack.Size() and s.Log.Len()
	// to the values observed on entry.
	Parse(s *State) bool

	// Children enumerates the immediate sub-parsers, for visitor
	// traversal and the well-formedness checker. Leaves return nil.
	Children() []Parser

	// RuleName returns the grammar-rule label assigned via Rule, or a
	// generic display name for unnamed nodes.
	RuleName() string
}

// snapshot captures the three quantities the combinator contract
// guarantees are restored on failure.
type snapshot struct {
	pos       int
	stackSize int
	logLen    int
}

func takeSnapshot(s *State) snapshot {
	return snapshot{pos: s.Pos, stackSize: s.Stack.Size(), logLen: s.Log.Len()}
}

func (sn snapshot) restore(s *State) {
	s.Pos = sn.pos
	s.Stack.restore(sn.stackSize)
	s.Log.restore(sn.logLen)
}

// funcParser is the single concrete Parser implementation shared by every
// combinator constructor in this package: a display name, its children
// (for traversal), and the doParse closure that implements the
// combinator's actual matching logic. The snapshot/call/restore discipline
// is implemented once, in invoke, and applied uniformly via Parse.
type funcParser struct {
	name string
	kids []Parser
	do   func(s *State) bool

	// kind and zeroWidth are consulted only by the well-formedness
	// checker (wellformed.go) to classify a node's nullability and
	// leftmost-child edges without needing an open type switch over
	// every combinator constructor. An empty kind is treated as an
	// opaque leaf: never nullable, no leftmost edges.
	kind      string
	zeroWidth bool
}

func (p *funcParser) RuleName() string   { return p.name }
func (p *funcParser) Children() []Parser { return p.kids }
func (p *funcParser) Parse(s *State) bool {
	return invoke(s, p.name, p.do)
}

func newParser(name string, kids []Parser, do func(s *State) bool) Parser {
	return &funcParser{name: name, kids: kids, do: do}
}

// newKindParser is newParser plus an explicit well-formedness kind tag.
func newKindParser(kind, name string, kids []Parser, do func(s *State) bool) Parser {
	return &funcParser{name: name, kids: kids, do: do, kind: kind}
}

// invoke is the shared wrapper: snapshot on entry, run doParse, and on
// false restore position/stack/log, track the furthest error position
// (and its call stack, if recording), and short-circuit immediately if a
// fatal condition was already thrown.
func invoke(s *State, name string, doParse func(*State) bool) bool {
	if s.Thrown != nil {
		return false
	}

	if s.Options.CallStackLimit > 0 && s.depth >= s.Options.CallStackLimit {
		return s.abort(errCallStackOverflow)
	}

	sn := takeSnapshot(s)
	s.pushCall(name)
	s.depth++

	var ok bool
	if s.Options.Trace && s.Metrics != nil {
		t0 := time.Now()
		ok = doParse(s)
		s.Metrics.RecordDuration(name, time.Since(t0))
		s.Metrics.RecordInvocation(name, ok)
	} else {
		ok = doParse(s)
	}

	s.depth--
	s.popCall()

	if !ok {
		s.noteFailure(s.Pos)
		sn.restore(s)
		return false
	}
	return true
}

// abort records a fatal, user-raised condition and reports failure. Once
// set, every subsequent invoke call short-circuits without running any
// further doParse.
func (s *State) abort(err error) bool {
	if s.Thrown == nil {
		s.Thrown = err
	}
	return false
}

// Rule labels pat with a grammar-rule name. The label is used by the
// well-formedness checker's diagnostics and, when call-stack recording is
// enabled, appears in State.CallStack / State.ErrorCallStack.
func Rule(name string, pat Parser) Parser {
	return newKindParser("named", name, []Parser{pat}, func(s *State) bool {
		return pat.Parse(s)
	})
}

// lazyParser resolves its target on first use and forwards every
// subsequent call to it, enabling cyclic grammar graphs without
// requiring the target to exist yet at construction time.
type lazyParser struct {
	resolve  func() Parser
	resolved Parser
}

// Lazy defers construction of a parser until first use, memoizing the
// result. This is the only way a grammar may contain a cycle: a rule
// that (directly or indirectly) refers to itself must close over a
// variable assigned after Lazy is called, the same pattern recursive
// grammars use to reference themselves before their own definition exists.
func Lazy(f func() Parser) Parser {
	return &lazyParser{resolve: f}
}

func (p *lazyParser) target() Parser {
	if p.resolved == nil {
		p.resolved = p.resolve()
	}
	return p.resolved
}

func (p *lazyParser) Parse(s *State) bool {
	return p.target().Parse(s)
}

func (p *lazyParser) Children() []Parser {
	return []Parser{p.target()}
}

func (p *lazyParser) RuleName() string {
	return p.target().RuleName()
}
