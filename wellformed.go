package peg

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Diagnostic describes one well-formedness violation found before a
// parse is attempted.
type Diagnostic struct {
	Rule    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Rule, d.Message)
}

// kindOf classifies a node for the nullable/leftmost-edge fixed point
// below. Nodes built outside this package (a custom Parser
// implementation) fall through to the zero value, treated as an opaque
// leaf: never nullable, no leftmost edges — the conservative default.
func kindOf(p Parser) (kind string, zeroWidth bool) {
	switch v := p.(type) {
	case *funcParser:
		return v.kind, v.zeroWidth
	case *lazyParser:
		return "named", false
	default:
		return "", false
	}
}

// leftmostChildren returns the edges considered for the left-recursion
// cycle search, given each child's already-computed nullability.
func leftmostChildren(p Parser, nullable func(Parser) bool) []Parser {
	kids := p.Children()
	if len(kids) == 0 {
		return nil
	}
	kind, _ := kindOf(p)
	switch kind {
	case "choice":
		return kids
	case "sequence":
		var edges []Parser
		for _, k := range kids {
			edges = append(edges, k)
			if !nullable(k) {
				break
			}
		}
		return edges
	case "lookahead", "alwaysNullable", "repetition", "named", "exprLeftmost":
		return kids[:1]
	default:
		return nil
	}
}

// computeNullable runs a fixed-point iteration over every reachable
// node, returning a membership set keyed by the node's identity (the
// Parser value itself), so two distinct nodes sharing a RuleName are
// tracked separately.
func computeNullable(nodes []Parser) map[Parser]bool {
	nullable := make(map[Parser]bool, len(nodes))
	changed := true
	for changed {
		changed = false
		for _, p := range nodes {
			if nullable[p] {
				continue
			}
			if isNullable(p, nullable) {
				nullable[p] = true
				changed = true
			}
		}
	}
	return nullable
}

func isNullable(p Parser, nullable map[Parser]bool) bool {
	kind, zeroWidth := kindOf(p)
	kids := p.Children()

	switch kind {
	case "leaf":
		return zeroWidth
	case "lookahead", "alwaysNullable":
		return true
	case "choice":
		for _, k := range kids {
			if nullable[k] {
				return true
			}
		}
		return false
	case "sequence":
		for _, k := range kids {
			if !nullable[k] {
				return false
			}
		}
		return true
	case "repetition":
		if zeroWidth {
			return true
		}
		return len(kids) > 0 && nullable[kids[0]]
	case "named", "exprLeftmost":
		return len(kids) > 0 && nullable[kids[0]]
	default:
		return false
	}
}

// collectNodes walks the graph reachable from root via Children(),
// visiting each distinct node once (cycles are expected, via Lazy).
func collectNodes(root Parser) []Parser {
	seen := make(map[Parser]bool)
	var order []Parser
	var walk func(Parser)
	walk = func(p Parser) {
		if p == nil || seen[p] {
			return
		}
		seen[p] = true
		order = append(order, p)
		for _, k := range p.Children() {
			walk(k)
		}
	}
	walk(root)
	return order
}

// Check runs the well-formedness analysis over root and returns every
// diagnostic found. A non-empty result means the driver must not start
// a parse.
func Check(root Parser) []Diagnostic {
	if root == nil {
		return []Diagnostic{{Rule: "<root>", Message: errNilRootParser.Error()}}
	}

	nodes := collectNodes(root)
	nullable := computeNullable(nodes)

	var diags []Diagnostic
	diags = append(diags, checkLeftRecursion(root, nullable)...)
	diags = append(diags, checkRepetitionOverNullable(nodes, nullable)...)
	return diags
}

// checkLeftRecursion performs a DFS over the leftmost-child edges
// looking for a cycle back to a node already on the path — an
// unprotected left-recursive rule. Expression/precedence nodes are
// exempt on their own recursive edge:
// leftmostChildren already restricts them to just their `left` operand,
// so a cycle can only be reported through a genuinely left-recursive
// `left`, never through the combinator's own infix/suffix handling.
func checkLeftRecursion(root Parser, nullable map[Parser]bool) []Diagnostic {
	onPath := treeset.NewWith(parserComparator)
	reported := treeset.NewWith(parserComparator)
	var diags []Diagnostic

	var visit func(p Parser)
	visit = func(p Parser) {
		if onPath.Contains(p) {
			if !reported.Contains(p) {
				reported.Add(p)
				diags = append(diags, Diagnostic{
					Rule:    p.RuleName(),
					Message: "unprotected left recursion",
				})
			}
			return
		}
		onPath.Add(p)
		for _, edge := range leftmostChildren(p, func(c Parser) bool { return nullable[c] }) {
			visit(edge)
		}
		onPath.Remove(p)
	}
	visit(root)
	return diags
}

// checkRepetitionOverNullable flags any repetition-kind node (Repetition
// or SepBy) whose operand can match without consuming input: such a
// loop either never terminates or the engine must impose an ad hoc
// iteration cap. A repetition that is the direct child of a named node
// (a Rule label or a named stack action) is reported under that node's
// name; otherwise under its own display name.
func checkRepetitionOverNullable(nodes []Parser, nullable map[Parser]bool) []Diagnostic {
	label := make(map[Parser]string)
	for _, p := range nodes {
		if kind, _ := kindOf(p); kind == "named" && len(p.Children()) > 0 {
			label[p.Children()[0]] = p.RuleName()
		}
	}

	var diags []Diagnostic
	for _, p := range nodes {
		kind, _ := kindOf(p)
		if kind != "repetition" {
			continue
		}
		kids := p.Children()
		if len(kids) > 0 && nullable[kids[0]] {
			rule := p.RuleName()
			if l, ok := label[p]; ok {
				rule = l
			}
			diags = append(diags, Diagnostic{
				Rule:    rule,
				Message: "repetition over a nullable operand",
			})
		}
	}
	return diags
}

// parserComparator orders Parser values by their runtime pointer
// identity string, the only ordering treeset.NewWith needs for set
// membership rather than any meaningful sort.
func parserComparator(a, b interface{}) int {
	pa, pb := fmt.Sprintf("%p", a), fmt.Sprintf("%p", b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}
