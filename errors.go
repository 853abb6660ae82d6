package lispust

import (
	"fmt"
)

// EvalError is returned when an expression is well formed but its operands
// have the wrong types. It is implemented by *InvalidOperandTypesError and
// *InvalidIfCondTypeError.
type EvalError interface {
	error
	evalError()
}

// InvalidOperandTypesError is returned when an arithmetic operator receives
// a non-numeric operand.
type InvalidOperandTypesError struct {
	Operator string
	Left     Value
	Right    Value
}

func (e *InvalidOperandTypesError) Error() string {
	return fmt.Sprintf("invalid operand types for %s: %#v, %#v", e.Operator, e.Left, e.Right)
}

func (*InvalidOperandTypesError) evalError() {}

// InvalidIfCondTypeError is returned when the condition of an if form does
// not evaluate to a boolean.
type InvalidIfCondTypeError struct {
	Cond Value
}

func (e *InvalidIfCondTypeError) Error() string {
	return fmt.Sprintf("invalid if condition type: %#v", e.Cond)
}

func (*InvalidIfCondTypeError) evalError() {}

var (
	_ = EvalError(&InvalidOperandTypesError{})
	_ = EvalError(&InvalidIfCondTypeError{})
)
