package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTypes(t *testing.T) {
	testCases := []struct {
		Node Node
		Type NodeType
		Name string
	}{
		{NewNumber(1), NodeTypeNumber, "number"},
		{NewBoolean(true), NodeTypeBoolean, "boolean"},
		{NewBinaryOp(OpAdd, NewNumber(1), NewNumber(2)), NodeTypeBinaryOp, "binary_op"},
		{NewConditional(NewBoolean(true), NewNumber(1), NewNumber(2)), NodeTypeConditional, "conditional"},
		{NewSequence(), NodeTypeSequence, "sequence"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Type, testCases[i].Node.Type())
		assert.Equal(t, testCases[i].Name, testCases[i].Node.Type().String())
	}

	assert.Equal(t, "", NodeTypeInvalid.String())
}

func TestSequence(t *testing.T) {
	seq := NewSequence()
	assert.NotNil(t, seq.Items)
	assert.Equal(t, 0, seq.Len())

	seq.Push(NewNumber(1))
	seq.Push(NewSequence())
	assert.Equal(t, 2, seq.Len())
}

func TestOperators(t *testing.T) {
	testCases := []struct {
		Symbol string
		Op     Operator
		Name   string
	}{
		{"+", OpAdd, "plus"},
		{"-", OpSubtract, "minus"},
	}

	for i := range testCases {
		op, ok := LookupOperator(testCases[i].Symbol)
		assert.True(t, ok)
		assert.Equal(t, testCases[i].Op, op)
		assert.Equal(t, testCases[i].Name, op.Name())
		assert.Equal(t, testCases[i].Symbol, op.Symbol())
	}

	for _, symbol := range []string{"*", "/", "if", "", "++"} {
		_, ok := LookupOperator(symbol)
		assert.False(t, ok, "symbol %q", symbol)
	}
}
