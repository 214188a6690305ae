// Package gocalc evaluates single-line arithmetic expressions with exact
// decimal semantics.
//
// Supported syntax: decimal literals, the binary operators + - * / ^ and
// parenthetical grouping with arbitrary nesting. Power binds tightest, then
// multiplication and division, then addition and subtraction; operators of
// equal precedence evaluate left to right.
//
// Values are exact decimals, so typical decimal input never shows binary
// floating-point artifacts: "0.1 + 0.2" is exactly 0.3.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := gocalc.Eval("2 + 3 * (4 - 1)")
//
//	// Compile once, evaluate many times
//	expr, err := gocalc.Compile("2 ^ 10 / 8")
//	result1, _ := evaluator.New().Eval(ctx, expr)
//
//	// With options
//	result, err := gocalc.Eval("10 / 3",
//	    evaluator.WithDivisionPrecision(4),
//	    evaluator.WithTimeout(5*time.Second),
//	)
//
// # Errors
//
// All failures are structured [types.Error] values carrying a code and a
// source position: lexical (unexpected character, invalid number),
// structural (unbalanced parentheses, malformed expression) and evaluation
// (division by zero, non-finite power result). Evaluation is pure and
// stateless; no error is ever retried or recovered internally.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/gocalc/pkg/parser
//   - Evaluator: github.com/sandrolain/gocalc/pkg/evaluator
//   - Types: github.com/sandrolain/gocalc/pkg/types
package gocalc

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sandrolain/gocalc/pkg/evaluator"
	"github.com/sandrolain/gocalc/pkg/parser"
	"github.com/sandrolain/gocalc/pkg/types"
)

// Version returns the current version of gocalc.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles an arithmetic expression for repeated evaluation.
//
// The compiled expression can be evaluated multiple times. It is safe for
// concurrent use.
//
// Example:
//
//	expr, err := gocalc.Compile("(1 + (2 + 3)) * 2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, _ := evaluator.New().Eval(ctx, expr)
func Compile(input string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(input, opts...)
}

// Eval is a convenience function that compiles and evaluates an expression
// in a single call.
//
// For repeated evaluations of the same expression, use Compile instead.
//
// Example:
//
//	result, err := gocalc.Eval("2 + 3 * 4")
func Eval(input string, opts ...evaluator.EvalOption) (decimal.Decimal, error) {
	expr, err := Compile(input)
	if err != nil {
		return decimal.Zero, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	eval := evaluator.New(opts...)
	return eval.Eval(ctx, expr)
}

// EvalWithContext evaluates an expression with a custom context.
func EvalWithContext(ctx context.Context, input string, opts ...evaluator.EvalOption) (decimal.Decimal, error) {
	expr, err := Compile(input)
	if err != nil {
		return decimal.Zero, err
	}

	eval := evaluator.New(opts...)
	return eval.Eval(ctx, expr)
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(input string) *types.Expression {
	expr, err := Compile(input)
	if err != nil {
		panic(fmt.Sprintf("gocalc: Compile(%q): %v", input, err))
	}
	return expr
}
