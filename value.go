package lispust

import (
	"fmt"
	"strconv"
)

// ValueType identifies the kind of a runtime value
type ValueType uint8

const (
	ValueTypeInvalid ValueType = iota
	ValueTypeNumber
	ValueTypeBoolean
)

var valueTypes = map[ValueType]string{
	ValueTypeInvalid: "invalid",
	ValueTypeNumber:  "number",
	ValueTypeBoolean: "boolean",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression: either a 32-bit signed
// integer or a boolean. Values are comparable with ==.
type Value struct {
	num int32
	b   bool

	Type ValueType
}

var (
	True  = Value{Type: ValueTypeBoolean, b: true}
	False = Value{Type: ValueTypeBoolean, b: false}
)

// NewNumber returns a number value
func NewNumber(v int32) Value {
	return Value{Type: ValueTypeNumber, num: v}
}

// NewBoolean returns a boolean value
func NewBoolean(v bool) Value {
	if v {
		return True
	}
	return False
}

// IsNumber returns true if the value holds an integer
func (v Value) IsNumber() bool {
	return v.Type == ValueTypeNumber
}

// IsBoolean returns true if the value holds a boolean
func (v Value) IsBoolean() bool {
	return v.Type == ValueTypeBoolean
}

// Int returns the integer held by a number value, zero otherwise.
func (v Value) Int() int32 {
	return v.num
}

// Bool returns the boolean held by a boolean value, false otherwise.
func (v Value) Bool() bool {
	return v.b
}

// String renders the value as a literal: "5", "-3", "true" or "false".
func (v Value) String() string {
	switch v.Type {
	case ValueTypeNumber:
		return strconv.FormatInt(int64(v.num), 10)
	case ValueTypeBoolean:
		return strconv.FormatBool(v.b)
	}
	return ":invalid"
}

// GoString renders the tagged form, e.g. Number(5) or Boolean(true).
func (v Value) GoString() string {
	switch v.Type {
	case ValueTypeNumber:
		return fmt.Sprintf("Number(%d)", v.num)
	case ValueTypeBoolean:
		return fmt.Sprintf("Boolean(%t)", v.b)
	}
	return "Invalid()"
}
