// Package ast defines the expression tree produced by the parser.
package ast

// Node is one syntactic form. The set of implementations is closed: Number,
// Boolean, BinaryOp, Conditional and Sequence.
type Node interface {
	Type() NodeType
	node()
}

// Keywords that open a special form.
const (
	KeywordIf    = "if"
	KeywordTrue  = "true"
	KeywordFalse = "false"
)

// BinaryOp applies Op to two operands
type BinaryOp struct {
	Op    Operator
	Left  Node
	Right Node
}

// NewBinaryOp creates a node of type "binary_op"
func NewBinaryOp(op Operator, left Node, right Node) *BinaryOp {
	return &BinaryOp{
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// Type returns NodeTypeBinaryOp
func (n *BinaryOp) Type() NodeType {
	return NodeTypeBinaryOp
}

func (*BinaryOp) node() {}

// Conditional selects Then or Else depending on Cond
type Conditional struct {
	Cond Node
	Then Node
	Else Node
}

// NewConditional creates a node of type "conditional"
func NewConditional(cond Node, then Node, els Node) *Conditional {
	return &Conditional{
		Cond: cond,
		Then: then,
		Else: els,
	}
}

// Type returns NodeTypeConditional
func (n *Conditional) Type() NodeType {
	return NodeTypeConditional
}

func (*Conditional) node() {}

// Sequence is a parenthesized group that is neither an operator call nor a
// conditional.
type Sequence struct {
	Items []Node
}

// NewSequence creates a node of type "sequence"
func NewSequence(items ...Node) *Sequence {
	if items == nil {
		items = []Node{}
	}
	return &Sequence{Items: items}
}

// Type returns NodeTypeSequence
func (n *Sequence) Type() NodeType {
	return NodeTypeSequence
}

// Push appends a child node to the sequence
func (n *Sequence) Push(node Node) {
	n.Items = append(n.Items, node)
}

// Len returns the number of children
func (n *Sequence) Len() int {
	return len(n.Items)
}

func (*Sequence) node() {}

var (
	_ = Node(&BinaryOp{})
	_ = Node(&Conditional{})
	_ = Node(&Sequence{})
)
