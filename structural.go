package peg

import (
	"fmt"
)

// Span is a half-open [Start, End) range of positions, used to record
// whitespace spans consumed by Token when Options.TrackWhitespace is set.
type Span struct {
	Start, End int
}

// SepBy matches item, then zero or more (sep, item) pairs. If trailing is
// true, a final, unmatched sep may be optionally consumed after the last
// item; if false, a dangling sep is left unconsumed so that whatever
// follows SepBy in the grammar rejects it naturally. Succeeds iff the
// total number of matched items is >= min.
func SepBy(item, sep Parser, min int, trailing bool) Parser {
	name := fmt.Sprintf("sepBy(%s,%s,min=%d,trailing=%t)", item.RuleName(), sep.RuleName(), min, trailing)
	p := &funcParser{name: name, kids: []Parser{item, sep}, kind: "repetition", zeroWidth: min <= 0}
	p.do = func(s *State) bool {
		count := 0
		if !item.Parse(s) {
			return min <= 0
		}
		count++

		for {
			if s.Options.LoopLimit > 0 && count >= s.Options.LoopLimit {
				return s.abort(errLoopLimitReached)
			}
			sn := takeSnapshot(s)
			if !sep.Parse(s) {
				break
			}
			if !item.Parse(s) {
				if !trailing {
					sn.restore(s)
				}
				break
			}
			count++
		}
		return count >= min
	}
	return p
}

// Word runs child, then greedily consumes whatever ws matches afterward.
// Trailing whitespace consumption never causes Word to fail: ws is
// expected to be a parser that always succeeds (e.g. Repetition(_, 0, -1)
// over whitespace runes), so its result is intentionally ignored here.
func Word(child, ws Parser) Parser {
	name := fmt.Sprintf("word(%s)", child.RuleName())
	return newKindParser("named", name, []Parser{child, ws}, func(s *State) bool {
		if !child.Parse(s) {
			return false
		}
		ws.Parse(s)
		return true
	})
}

// Token runs child under the given rule name, then consumes trailing
// whitespace the same way Word does, additionally recording the
// whitespace span when Options.TrackWhitespace is enabled so callers can
// compute AST spans that exclude it.
func Token(name string, child, ws Parser) Parser {
	return newKindParser("named", name, []Parser{child, ws}, func(s *State) bool {
		if !child.Parse(s) {
			return false
		}
		wsStart := s.Pos
		ws.Parse(s)
		if s.Options.TrackWhitespace && s.Pos > wsStart {
			s.WhitespaceSpans = append(s.WhitespaceSpans, Span{Start: wsStart, End: s.Pos})
		}
		return true
	})
}

// TokenChoiceEntry registers one whole literal token and the parser to
// run once it has matched (typically a stack action that pushes a typed
// Token capture). Result may be nil, meaning "just consume the literal".
type TokenChoiceEntry struct {
	Text   string
	Result Parser
}

// tokenTrieNode is a plain byte trie over the fixed, pre-registered set
// of token texts a TokenChoice dispatches over. Small and static by
// construction (built once from the entries passed to TokenChoice), so
// it is kept as a straightforward trie rather than any width-grouped or
// backtracking scheme: insertion and lookup are both a single
// byte-at-a-time walk down the tree.
type tokenTrieNode struct {
	complete bool
	children map[byte]*tokenTrieNode
}

func insertToken(root *tokenTrieNode, text string) {
	node := root
	for i := 0; i < len(text); i++ {
		b := text[i]
		child, ok := node.children[b]
		if !ok {
			child = &tokenTrieNode{children: make(map[byte]*tokenTrieNode)}
			node.children[b] = child
		}
		node = child
	}
	node.complete = true
}

func buildTokenTrie(texts []string) *tokenTrieNode {
	root := &tokenTrieNode{children: make(map[byte]*tokenTrieNode)}
	for _, text := range texts {
		insertToken(root, text)
	}
	return root
}

// longestMatch walks the trie alongside in starting at pos, one byte at a
// time, remembering the length of the longest registered token seen along
// the way. Returns -1 if no registered token matches at pos at all.
func (root *tokenTrieNode) longestMatch(in Input, pos int) int {
	node := root
	longest := -1
	for i := 0; ; i++ {
		if node.complete {
			longest = i
		}
		if pos+i >= in.Len() {
			return longest
		}
		child, ok := node.children[in.Text(pos+i, pos+i+1)[0]]
		if !ok {
			return longest
		}
		node = child
	}
}

// TokenChoice dispatches to the registered literal whose text is the
// longest prefix of the input actually present in the set (maximal
// munch, the conventional lexer rule for disjoint token sets). This
// coincides with an ordered choice over the registered tokens whenever no
// token is a proper prefix of another; when one is (e.g. "<" and "<="
// both registered), maximal munch deliberately wins over registration
// order, since a fixed token set is exactly the case where the longer
// token is always the intended match. See SPEC_FULL.md's supplemented
// features for this as an explicit, justified deviation from strict
// ordered-choice semantics.
func TokenChoice(entries ...TokenChoiceEntry) Parser {
	byText := make(map[string]Parser, len(entries))
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		byText[e.Text] = e.Result
		texts = append(texts, e.Text)
	}
	trie := buildTokenTrie(texts)

	kids := make([]Parser, 0, len(entries))
	for _, e := range entries {
		if e.Result != nil {
			kids = append(kids, e.Result)
		}
	}

	return newParser("tokenChoice", kids, func(s *State) bool {
		matched := trie.longestMatch(s.Input, s.Pos)
		if matched < 0 {
			return false
		}
		text := s.Input.Text(s.Pos, s.Pos+matched)
		s.Pos += matched
		if result, ok := byText[text]; ok && result != nil {
			return result.Parse(s)
		}
		return true
	})
}
