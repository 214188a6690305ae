package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NodeType identifies the kind of a sequence node.
type NodeType uint8

const (
	NodeLiteral  NodeType = iota // numeric constant
	NodeOperator                 // binary arithmetic operator
	NodeGroup                    // parenthesized sub-sequence
)

// String returns a string representation of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeLiteral:
		return "literal"
	case NodeOperator:
		return "operator"
	case NodeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Operator identifies a binary arithmetic operator.
type Operator uint8

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

// Precedence tiers, highest binds tightest. Operators within a tier are
// applied left to right.
const (
	TierAdditive       = 1 // + -
	TierMultiplicative = 2 // * /
	TierExponent       = 3 // ^
)

// Precedence returns the precedence tier of the operator.
func (op Operator) Precedence() int {
	switch op {
	case OpPower:
		return TierExponent
	case OpMultiply, OpDivide:
		return TierMultiplicative
	default:
		return TierAdditive
	}
}

// String returns the source symbol of the operator.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "^"
	default:
		return "?"
	}
}

// Node is one element of a compiled expression sequence.
//
// A sequence alternates literals (or groups, which reduce to literals) with
// operators. A group node owns its children exclusively: nesting is
// structural, so the evaluator never re-scans for matching parentheses.
type Node struct {
	Type     NodeType
	Value    decimal.Decimal // literal value, set for NodeLiteral
	Op       Operator        // operator kind, set for NodeOperator
	Children []Node          // nested sequence, set for NodeGroup
	Position int             // byte offset in the source expression
}

// NewLiteral creates a literal node holding an exact decimal value.
func NewLiteral(value decimal.Decimal, position int) Node {
	return Node{Type: NodeLiteral, Value: value, Position: position}
}

// NewOperator creates an operator node.
func NewOperator(op Operator, position int) Node {
	return Node{Type: NodeOperator, Op: op, Position: position}
}

// NewGroup creates a group node owning the given child sequence.
func NewGroup(children []Node, position int) Node {
	return Node{Type: NodeGroup, Children: children, Position: position}
}

// String renders the node as it would appear in source form.
func (n Node) String() string {
	switch n.Type {
	case NodeLiteral:
		return n.Value.String()
	case NodeOperator:
		return n.Op.String()
	case NodeGroup:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<invalid>"
	}
}
