package evaluator

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sandrolain/gocalc/pkg/types"
)

// maxExactExponent bounds the integer exponents computed exactly in decimal
// arithmetic; larger magnitudes fall back to float64.
var maxExactExponent = decimal.NewFromInt(1000)

// reduce collapses a node sequence to a single literal value.
//
// Groups are resolved bottom-up first, leaving a flat sequence that must
// alternate strictly literal, operator, literal, ... Operators are then
// applied one precedence tier at a time, left to right within a tier, each
// application merging three nodes into one.
func (e *Evaluator) reduce(ctx context.Context, nodes []types.Node) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	flat, err := e.resolveGroups(ctx, nodes)
	if err != nil {
		return decimal.Zero, err
	}

	if err := validateSequence(flat); err != nil {
		return decimal.Zero, err
	}

	for tier := types.TierExponent; tier >= types.TierAdditive; tier-- {
		i := 1
		for i < len(flat)-1 {
			if flat[i].Op.Precedence() != tier {
				i += 2
				continue
			}
			if err := ctx.Err(); err != nil {
				return decimal.Zero, err
			}
			value, err := e.apply(flat[i].Op, flat[i-1].Value, flat[i+1].Value, flat[i].Position)
			if err != nil {
				return decimal.Zero, err
			}
			flat[i-1] = types.NewLiteral(value, flat[i-1].Position)
			flat = append(flat[:i], flat[i+2:]...)
			// Stay at the same index: the merged literal may be the left
			// operand of the next operator in this tier.
		}
	}

	if len(flat) != 1 {
		return decimal.Zero, types.NewError(types.ErrMalformedExpression,
			fmt.Sprintf("expression reduced to %d values", len(flat)), -1)
	}
	return flat[0].Value, nil
}

// resolveGroups replaces every group node with the literal its children
// reduce to. Recursion terminates because each group strictly contains
// fewer nodes than its parent sequence.
func (e *Evaluator) resolveGroups(ctx context.Context, nodes []types.Node) ([]types.Node, error) {
	flat := make([]types.Node, len(nodes))
	for i, n := range nodes {
		if n.Type != types.NodeGroup {
			flat[i] = n
			continue
		}
		value, err := e.reduce(ctx, n.Children)
		if err != nil {
			return nil, err
		}
		flat[i] = types.NewLiteral(value, n.Position)
	}
	return flat, nil
}

// validateSequence checks the strict alternation required before reduction:
// literals at even indices, operators at odd indices, starting and ending
// with a literal.
func validateSequence(nodes []types.Node) error {
	if len(nodes) == 0 {
		return types.NewError(types.ErrMalformedExpression, "empty expression", -1)
	}
	for i, n := range nodes {
		if i%2 == 0 {
			if n.Type != types.NodeLiteral {
				return types.NewError(types.ErrMalformedExpression,
					fmt.Sprintf("expected a value, found %q", n.String()), n.Position)
			}
		} else if n.Type != types.NodeOperator {
			return types.NewError(types.ErrMalformedExpression,
				fmt.Sprintf("expected an operator, found %q", n.String()), n.Position)
		}
	}
	if last := nodes[len(nodes)-1]; last.Type == types.NodeOperator {
		return types.NewError(types.ErrMalformedExpression,
			"expression ends with an operator", last.Position)
	}
	return nil
}

// apply performs a single binary operation.
func (e *Evaluator) apply(op types.Operator, left, right decimal.Decimal, pos int) (decimal.Decimal, error) {
	if e.opts.Debug {
		e.logger.Debug("applying operator", "op", op.String(), "left", left, "right", right)
	}

	switch op {
	case types.OpAdd:
		return left.Add(right), nil
	case types.OpSubtract:
		return left.Sub(right), nil
	case types.OpMultiply:
		return left.Mul(right), nil
	case types.OpDivide:
		if right.IsZero() {
			return decimal.Zero, types.NewError(types.ErrDivisionByZero, "division by zero", pos)
		}
		return left.DivRound(right, e.opts.DivisionPrecision), nil
	case types.OpPower:
		return e.pow(left, right, pos)
	default:
		return decimal.Zero, types.NewError(types.ErrMalformedExpression,
			fmt.Sprintf("unknown operator %q", op.String()), pos)
	}
}

// pow computes left^right. Integer exponents of reasonable magnitude are
// computed exactly in decimal arithmetic; everything else goes through
// float64 exponentiation and is coerced back to decimal.
func (e *Evaluator) pow(left, right decimal.Decimal, pos int) (decimal.Decimal, error) {
	if left.IsZero() && right.Sign() < 0 {
		return decimal.Zero, types.NewError(types.ErrDivisionByZero,
			"zero raised to a negative power", pos)
	}

	if right.IsInteger() && right.Abs().LessThanOrEqual(maxExactExponent) {
		return left.Pow(right), nil
	}

	lf, _ := left.Float64()
	rf, _ := right.Float64()
	result := math.Pow(lf, rf)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return decimal.Zero, types.NewError(types.ErrNumberNotFinite, "number out of range", pos)
	}
	return decimal.NewFromFloat(result), nil
}
