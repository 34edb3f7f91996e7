package peg

import "testing"

type binOp struct {
	op          string
	left, right interface{}
}

func pushDigit(text string) Parser {
	return Push("digit", Literal(text), func(s *State, start int, frame Frame) (interface{}, error) {
		return s.span(start), nil
	})
}

func addInfix() InfixAlt {
	return InfixAlt{
		Op: Literal("+"),
		Action: func(s *State, pos0, size0 int, frame Frame) (interface{}, error) {
			if len(frame) != 2 {
				return nil, errFrameUnderflow
			}
			return binOp{op: "+", left: frame[0], right: frame[1]}, nil
		},
	}
}

func digitOperand() Parser {
	return Choice(pushDigit("1"), pushDigit("2"), pushDigit("3"))
}

func TestLeftExpressionIsLeftAssociative(t *testing.T) {
	expr := LeftExpression(digitOperand(), nil, []InfixAlt{addInfix()}, nil, false)

	s := NewState(NewStringInput("1+2+3"), Options{})
	if !expr.Parse(s) || s.Pos != 5 {
		t.Fatalf("LeftExpression on 1+2+3: ok=%v pos=%d", expr.Parse(s), s.Pos)
	}
	top := s.Stack.Peek().(binOp)
	if top.op != "+" || top.right != "3" {
		t.Fatalf("top = %+v, want right associand 3 (outermost node)", top)
	}
	inner, ok := top.left.(binOp)
	if !ok || inner.left != "1" || inner.right != "2" {
		t.Fatalf("left child = %+v, want ((1+2)+3) shape", top.left)
	}
}

func TestLeftExpressionOperatorRequired(t *testing.T) {
	expr := LeftExpression(digitOperand(), nil, []InfixAlt{addInfix()}, nil, true)

	_, ok := runParser(t, expr, "1")
	if ok {
		t.Fatalf("operator_required should fail a bare operand")
	}
}

func TestLeftExpressionBareOperandAllowed(t *testing.T) {
	expr := LeftExpression(digitOperand(), nil, []InfixAlt{addInfix()}, nil, false)

	s, ok := runParser(t, expr, "1")
	if !ok || s.Pos != 1 {
		t.Fatalf("bare operand should be accepted when operator_required is false")
	}
}

func TestRightExpressionIsRightAssociative(t *testing.T) {
	expr := RightExpression(digitOperand(), []InfixAlt{addInfix()}, false)

	s, ok := runParser(t, expr, "1+2+3")
	if !ok || s.Pos != 5 {
		t.Fatalf("RightExpression on 1+2+3: ok=%v pos=%d", ok, s.Pos)
	}
	top := s.Stack.Peek().(binOp)
	if top.op != "+" || top.left != "1" {
		t.Fatalf("top = %+v, want left operand 1 (outermost node)", top)
	}
	inner, ok2 := top.right.(binOp)
	if !ok2 || inner.left != "2" || inner.right != "3" {
		t.Fatalf("right child = %+v, want (1+(2+3)) shape", top.right)
	}
}
