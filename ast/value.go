package ast

import (
	"strconv"
)

// Number is an integer literal
type Number struct {
	Value int32
}

// NewNumber creates a number literal node
func NewNumber(v int32) *Number {
	return &Number{Value: v}
}

// Type returns NodeTypeNumber
func (n *Number) Type() NodeType {
	return NodeTypeNumber
}

// Encode returns the literal as it would be written in source
func (n *Number) Encode() string {
	return strconv.FormatInt(int64(n.Value), 10)
}

func (*Number) node() {}

// Boolean is a boolean literal
type Boolean struct {
	Value bool
}

// NewBoolean creates a boolean literal node
func NewBoolean(v bool) *Boolean {
	return &Boolean{Value: v}
}

// Type returns NodeTypeBoolean
func (n *Boolean) Type() NodeType {
	return NodeTypeBoolean
}

// Encode returns the literal as it would be written in source
func (n *Boolean) Encode() string {
	return strconv.FormatBool(n.Value)
}

func (*Boolean) node() {}

var (
	_ = Node(&Number{})
	_ = Node(&Boolean{})
)
