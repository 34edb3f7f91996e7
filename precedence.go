package peg

// ExprAction receives the frame spanning everything pushed since entry
// into the expression combinator (pos0/size0), and produces the single
// value that becomes the new "left" operand.
type ExprAction func(s *State, pos0, size0 int, frame Frame) (interface{}, error)

// InfixAlt is one `infix(op, action)` alternative: op is tried, and on
// success right is parsed before action runs.
type InfixAlt struct {
	Op     Parser
	Action ExprAction
}

// SuffixAlt is one `suffix(p, action)` alternative: p alone is tried,
// with no separate right-hand operand.
type SuffixAlt struct {
	P      Parser
	Action ExprAction
}

// LeftExpression builds a left-associative precedence-climbing
// combinator. right defaults to left when nil. At least one of
// infixes/suffixes must be non-empty.
func LeftExpression(left, right Parser, infixes []InfixAlt, suffixes []SuffixAlt, operatorRequired bool) Parser {
	if right == nil {
		right = left
	}
	if len(infixes) == 0 && len(suffixes) == 0 {
		panic(errEmptyInfixAndSuffix)
	}

	return newKindParser("exprLeftmost", "leftExpression", []Parser{left, right}, func(s *State) bool {
		pos0, size0 := s.Pos, s.Stack.Size()

		if !left.Parse(s) {
			return false
		}

		iterations := 0
		for {
			if tryInfixAlts(s, pos0, size0, right, infixes) {
				iterations++
				continue
			}
			if trySuffixAlts(s, pos0, size0, suffixes) {
				iterations++
				continue
			}
			break
		}

		if operatorRequired && iterations == 0 {
			return false
		}
		return true
	})
}

func tryInfixAlts(s *State, pos0, size0 int, right Parser, infixes []InfixAlt) bool {
	for _, alt := range infixes {
		sn := takeSnapshot(s)
		if !alt.Op.Parse(s) {
			sn.restore(s)
			continue
		}
		if !right.Parse(s) {
			sn.restore(s)
			continue
		}
		if !applyExprAction(s, pos0, size0, alt.Action) {
			return false
		}
		return true
	}
	return false
}

func trySuffixAlts(s *State, pos0, size0 int, suffixes []SuffixAlt) bool {
	for _, alt := range suffixes {
		sn := takeSnapshot(s)
		if !alt.P.Parse(s) {
			sn.restore(s)
			continue
		}
		if !applyExprAction(s, pos0, size0, alt.Action) {
			return false
		}
		return true
	}
	return false
}

func applyExprAction(s *State, pos0, size0 int, action ExprAction) bool {
	frame := Frame(s.Stack.PopFrom(size0))
	v, err := action(s, pos0, size0, frame)
	if err != nil {
		return s.abort(err)
	}
	s.Stack.Push(v)
	return true
}

// RightExpression builds a right-associative precedence combinator:
// after an infix op matches, it recurses into a fresh right-hand
// expression at the same precedence rather than looping, so repeated
// operators nest to the right. operatorRequired applies to the outermost
// level only: each nested right-hand expression may be a bare operand.
func RightExpression(left Parser, infixes []InfixAlt, operatorRequired bool) Parser {
	if len(infixes) == 0 {
		panic(errEmptyInfixAndSuffix)
	}

	var self, rest Parser
	self = newKindParser("exprLeftmost", "rightExpression", []Parser{left}, func(s *State) bool {
		pos0, size0 := s.Pos, s.Stack.Size()

		if !left.Parse(s) {
			return false
		}

		matched := false
		for _, alt := range infixes {
			sn := takeSnapshot(s)
			if !alt.Op.Parse(s) {
				sn.restore(s)
				continue
			}
			if !rest.Parse(s) {
				sn.restore(s)
				continue
			}
			if !applyExprAction(s, pos0, size0, alt.Action) {
				return false
			}
			matched = true
			break
		}

		if operatorRequired && !matched {
			return false
		}
		return true
	})
	rest = self
	if operatorRequired {
		rest = RightExpression(left, infixes, false)
	}
	return self
}

// Ternary builds the `? _ :` composite infix alternative for use inside
// LeftExpression/RightExpression's infixes: the "operator" consists of
// question, a full nested expression, and colon, so the action receives
// both the condition-side frame and the parsed middle expression in a
// single pushed-value hop.
func Ternary(question, middle, colon Parser) Parser {
	return Collect("ternary", Sequence(question, middle, colon), func(s *State, start int, frame Frame) error {
		if len(frame) != 1 {
			return errFrameUnderflow
		}
		s.Stack.Push(frame[0])
		return nil
	})
}
