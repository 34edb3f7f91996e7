package peg

import "github.com/cnf/structhash"

// hashedResult is the subset of Result that feeds the determinism
// comparison: the value stack's shape, hashed structurally so that
// RunTwice can detect a divergent AST without the engine having to know
// anything about the grammar author's value types.
type hashedResult struct {
	Stack []interface{}
}

// hashResult hashes the value-stack portion of a Result with structhash,
// avoiding a hand-written Equal method per grammar author's value type.
func hashResult(r Result) string {
	sum, err := structhash.Hash(hashedResult{Stack: r.Stack}, 1)
	if err != nil {
		return ""
	}
	return sum
}
