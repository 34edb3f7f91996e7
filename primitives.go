package peg

import (
	"fmt"
	"strings"
)

// Literal matches a fixed sequence of text at the current position,
// advancing by its length on success. Meaningful over any Input whose
// Text method returns the underlying source, but intended for
// character-sequence input.
func Literal(text string) Parser {
	name := fmt.Sprintf("literal(%q)", text)
	p := &funcParser{name: name, kind: "leaf", zeroWidth: len(text) == 0}
	p.do = func(s *State) bool {
		end := s.Pos + len(text)
		if end > s.Input.Len() {
			return false
		}
		if s.Input.Text(s.Pos, end) != text {
			return false
		}
		s.Pos = end
		return true
	}
	return p
}

// LiteralFold matches text case-insensitively (ASCII and simple Unicode
// case folding via strings.EqualFold), advancing by the length of the
// matched input on success.
func LiteralFold(text string) Parser {
	name := fmt.Sprintf("literalFold(%q)", text)
	return newParser(name, nil, func(s *State) bool {
		end := s.Pos + len(text)
		if end > s.Input.Len() {
			return false
		}
		if !strings.EqualFold(s.Input.Text(s.Pos, end), text) {
			return false
		}
		s.Pos = end
		return true
	})
}

// Any matches exactly one element (rune or token), failing at end of
// input.
func Any() Parser {
	return newParser("any", nil, func(s *State) bool {
		width, ok := s.Input.Next(s.Pos)
		if !ok {
			return false
		}
		s.Pos += width
		return true
	})
}

// CharPredicate matches one rune satisfying fn. Requires the Input to
// implement RuneDecoder; fails if it doesn't (a grammar author mixing
// rune-based primitives with token-sequence input is a construction
// error, not a runtime one this primitive should panic over).
func CharPredicate(name string, fn func(r rune) bool) Parser {
	return newParser(name, nil, func(s *State) bool {
		dec, ok := s.Input.(RuneDecoder)
		if !ok {
			return false
		}
		r, width := dec.DecodeRune(s.Pos)
		if width == 0 || !fn(r) {
			return false
		}
		s.Pos += width
		return true
	})
}

// TokenPredicate matches one token satisfying fn. Requires the Input to
// implement TokenAccessor.
func TokenPredicate(name string, fn func(t Token) bool) Parser {
	return newParser(name, nil, func(s *State) bool {
		acc, ok := s.Input.(TokenAccessor)
		if !ok {
			return false
		}
		if s.Pos >= s.Input.Len() {
			return false
		}
		tok := acc.TokenAt(s.Pos)
		if !fn(tok) {
			return false
		}
		s.Pos++
		return true
	})
}

// RuneRange matches a single rune within any of the given inclusive
// [low, high] pairs.
func RuneRange(pairs ...[2]rune) Parser {
	name := "range" + rangeLabel(pairs)
	return CharPredicate(name, func(r rune) bool {
		for _, p := range pairs {
			if r >= p[0] && r <= p[1] {
				return true
			}
		}
		return false
	})
}

// NotRuneRange matches a single rune outside of every given
// [low, high] pair.
func NotRuneRange(pairs ...[2]rune) Parser {
	name := "notRange" + rangeLabel(pairs)
	return CharPredicate(name, func(r rune) bool {
		for _, p := range pairs {
			if r >= p[0] && r <= p[1] {
				return false
			}
		}
		return true
	})
}

func rangeLabel(pairs [][2]rune) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%c-%c", p[0], p[1])
	}
	b.WriteByte(')')
	return b.String()
}

// RuneSet matches a single rune present in set.
func RuneSet(set string) Parser {
	members := make(map[rune]bool, len(set))
	for _, r := range set {
		members[r] = true
	}
	return CharPredicate(fmt.Sprintf("set(%q)", set), func(r rune) bool {
		return members[r]
	})
}

// NotRuneSet matches a single rune absent from set.
func NotRuneSet(set string) Parser {
	members := make(map[rune]bool, len(set))
	for _, r := range set {
		members[r] = true
	}
	return CharPredicate(fmt.Sprintf("notSet(%q)", set), func(r rune) bool {
		return !members[r]
	})
}

// Not succeeds iff child fails, consuming no input and touching neither
// the value stack nor the effect log on either outcome.
func Not(child Parser) Parser {
	return newKindParser("lookahead", fmt.Sprintf("not(%s)", child.RuleName()), []Parser{child}, func(s *State) bool {
		sn := takeSnapshot(s)
		ok := child.Parse(s)
		sn.restore(s)
		return !ok
	})
}

// And is positive lookahead: succeeds iff child succeeds, but always
// restores position, stack and log, even on success.
func And(child Parser) Parser {
	return newKindParser("lookahead", fmt.Sprintf("and(%s)", child.RuleName()), []Parser{child}, func(s *State) bool {
		sn := takeSnapshot(s)
		ok := child.Parse(s)
		sn.restore(s)
		return ok
	})
}

// Sequence runs children in order, failing as soon as one fails. Full
// rollback on failure is guaranteed by the invoke wrapper, so Sequence's
// own doParse need only fail fast.
func Sequence(children ...Parser) Parser {
	if len(children) == 0 {
		return newKindParser("sequence", "sequence()", nil, func(s *State) bool { return true })
	}
	return newKindParser("sequence", "sequence", children, func(s *State) bool {
		for _, c := range children {
			if !c.Parse(s) {
				return false
			}
		}
		return true
	})
}

// Choice tries children in order and returns on the first success
// (ordered, not longest-match). If every child fails, Choice fails and
// the wrapper restores state.
func Choice(children ...Parser) Parser {
	if len(children) == 0 {
		return newKindParser("choice", "choice()", nil, func(s *State) bool { return false })
	}
	return newKindParser("choice", "choice", children, func(s *State) bool {
		for _, c := range children {
			if c.Parse(s) {
				return true
			}
		}
		return false
	})
}

// Optional runs child; it always succeeds. On child's failure the state
// is restored to the pre-call snapshot (handled by child's own wrapper),
// and Optional itself still reports success.
func Optional(child Parser) Parser {
	return newKindParser("alwaysNullable", fmt.Sprintf("optional(%s)", child.RuleName()), []Parser{child}, func(s *State) bool {
		child.Parse(s)
		return true
	})
}

// Repetition greedily matches child repeatedly until it fails or max
// iterations is reached (max < 0 means unbounded), succeeding iff the
// number of successful iterations is >= min. Each successful iteration's
// effects persist; the failing iteration is rolled back by its own
// wrapper.
func Repetition(child Parser, min, max int) Parser {
	name := fmt.Sprintf("repetition(%d,%d){%s}", min, max, child.RuleName())
	p := &funcParser{name: name, kids: []Parser{child}, kind: "repetition", zeroWidth: min == 0}
	p.do = func(s *State) bool {
		count := 0
		for max < 0 || count < max {
			if s.Options.LoopLimit > 0 && count >= s.Options.LoopLimit {
				return s.abort(errLoopLimitReached)
			}
			if !child.Parse(s) {
				break
			}
			count++
		}
		return count >= min
	}
	return p
}
