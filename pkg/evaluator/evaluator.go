// Package evaluator implements the arithmetic reduction engine.
//
// The evaluator receives a compiled node sequence from the parser and
// collapses it to a single decimal value in two steps:
//   - Group resolution: every group node is replaced, bottom-up, by the
//     literal its children reduce to
//   - Precedence-tiered reduction: operators are applied one tier at a
//     time (^ before * / before + -), left to right within a tier
//
// Evaluation is pure and stateless: each call is independent, so a single
// Evaluator may be shared by multiple goroutines.
//
// # Example
//
//	eval := evaluator.New()
//	result, err := eval.Eval(ctx, expr)
//	if err != nil {
//	    log.Fatal(err)
//	}
package evaluator

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sandrolain/gocalc/pkg/types"
)

// Evaluator reduces compiled expressions to decimal values.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// DivisionPrecision is the number of fractional digits kept when a
	// quotient does not terminate. Defaults to 16.
	DivisionPrecision int32
	// Timeout sets evaluation timeout.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		DivisionPrecision: 16,
		Timeout:           30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
	}
}

// Eval reduces a compiled expression to a single decimal value.
//
// Cancellation is checked on every group recursion, so deeply nested
// expressions respect the context and the configured timeout.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (decimal.Decimal, error) {
	if expr == nil {
		return decimal.Zero, types.NewError(types.ErrMalformedExpression, "nil expression", -1)
	}

	// Apply timeout if configured
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	if e.opts.Debug {
		e.logger.Debug("evaluating expression", "source", expr.Source())
	}

	return e.reduce(ctx, expr.Nodes())
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithDivisionPrecision sets the number of fractional digits kept when a
// quotient does not terminate.
func WithDivisionPrecision(precision int32) EvalOption {
	return func(opts *EvalOptions) {
		opts.DivisionPrecision = precision
	}
}

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) EvalOption {
	return func(opts *EvalOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}
