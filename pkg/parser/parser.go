// Package parser compiles arithmetic expression strings into node sequences.
//
// The package consists of two components:
//   - Lexer: Tokenizes the input expression into a stream of tokens
//   - Parser: Splices parenthesized spans into structurally nested groups
//
// Nesting is built directly into the compiled sequence: a parenthesized
// span becomes a single group node owning its children, so the evaluator
// never has to re-scan for matching parentheses.
//
// # Example
//
//	expr, err := parser.Parse("2 * (4 + 3)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	nodes := expr.Nodes()
package parser

import (
	"github.com/sandrolain/gocalc/pkg/types"
)

// Parse parses an arithmetic expression and returns the compiled Expression.
//
// The function tokenizes the input and builds the node sequence. If parsing
// fails, it returns a structured error with position information.
func Parse(input string) (*types.Expression, error) {
	p := NewParser(input)
	return p.Parse()
}

// Compile is an alias for Parse that accepts compilation options.
func Compile(input string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(input, opts...)
	return p.Parse()
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits parenthesis nesting depth to prevent stack overflow
	// during evaluation. Defaults to 100.
	MaxDepth int
}

// WithMaxDepth sets the maximum parenthesis nesting depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
