package lispust

import (
	"fmt"

	"github.com/xiam/lispust/ast"
)

// Evaluate reduces a tree to a value. It is pure: the same tree always yields
// the same value or the same error.
func Evaluate(node ast.Node) (Value, error) {
	switch node := node.(type) {

	case *ast.Number:
		return NewNumber(node.Value), nil

	case *ast.Boolean:
		return NewBoolean(node.Value), nil

	case *ast.BinaryOp:
		return evalBinaryOp(node)

	case *ast.Conditional:
		return evalConditional(node)

	case *ast.Sequence:
		// Lists are not values yet, a sequence evaluates to true without
		// looking at its items.
		return True, nil

	case nil:
		return Value{}, fmt.Errorf("cannot evaluate a nil node")
	}

	panic(fmt.Sprintf("unreachable: unknown node type %T", node))
}

func evalBinaryOp(node *ast.BinaryOp) (Value, error) {
	left, err := Evaluate(node.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := Evaluate(node.Right)
	if err != nil {
		return Value{}, err
	}

	if !left.IsNumber() || !right.IsNumber() {
		return Value{}, &InvalidOperandTypesError{
			Operator: node.Op.Name(),
			Left:     left,
			Right:    right,
		}
	}

	switch node.Op {
	case ast.OpAdd:
		return NewNumber(left.Int() + right.Int()), nil
	case ast.OpSubtract:
		return NewNumber(left.Int() - right.Int()), nil
	}

	panic(fmt.Sprintf("unreachable: unknown operator %d", node.Op))
}

func evalConditional(node *ast.Conditional) (Value, error) {
	cond, err := Evaluate(node.Cond)
	if err != nil {
		return Value{}, err
	}
	if !cond.IsBoolean() {
		return Value{}, &InvalidIfCondTypeError{Cond: cond}
	}
	if cond.Bool() {
		return Evaluate(node.Then)
	}
	return Evaluate(node.Else)
}
