package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeNumber
	NodeTypeBoolean
	NodeTypeBinaryOp
	NodeTypeConditional
	NodeTypeSequence
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber:      "number",
	NodeTypeBoolean:     "boolean",
	NodeTypeBinaryOp:    "binary_op",
	NodeTypeConditional: "conditional",
	NodeTypeSequence:    "sequence",
}

// Operator identifies the arithmetic operation of a BinaryOp.
type Operator uint8

// Binary operators
const (
	OpAdd Operator = iota + 1
	OpSubtract
)

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSubtract: "-",
}

var operatorNames = map[Operator]string{
	OpAdd:      "plus",
	OpSubtract: "minus",
}

// LookupOperator returns the operator written as symbol, if any.
func LookupOperator(symbol string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

// Symbol returns the source keyword of the operator ("+" or "-").
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

// Name returns the name used in diagnostics ("plus" or "minus").
func (op Operator) Name() string {
	return operatorNames[op]
}

func (op Operator) String() string {
	return op.Name()
}
