// Package types defines the core type system for gocalc.
//
// This package contains type definitions for:
//   - Expression: Compiled arithmetic expressions
//   - Node: Sequence nodes (literals, operators, nested groups)
//   - Operator: Binary operator kinds with precedence tiers
//   - Error types: Structured errors with codes
package types

// Expression represents a compiled arithmetic expression.
//
// An Expression can be evaluated multiple times by passing it to
// [evaluator.Evaluator.Eval]. It is immutable after compilation and safe
// for concurrent use by multiple goroutines.
type Expression struct {
	nodes  []Node
	source string
}

// NewExpression creates a new Expression from a compiled node sequence.
func NewExpression(nodes []Node, source string) *Expression {
	return &Expression{
		nodes:  nodes,
		source: source,
	}
}

// Nodes returns the compiled node sequence of the expression.
func (e *Expression) Nodes() []Node {
	return e.nodes
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
