package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocalc/pkg/types"
)

func lit(value string, pos int) types.Node {
	return types.NewLiteral(decimal.RequireFromString(value), pos)
}

func TestParseFlatSequence(t *testing.T) {
	expr, err := Parse("2+3*4")
	require.NoError(t, err)

	expected := []types.Node{
		lit("2", 0),
		types.NewOperator(types.OpAdd, 1),
		lit("3", 2),
		types.NewOperator(types.OpMultiply, 3),
		lit("4", 4),
	}
	assert.Equal(t, expected, expr.Nodes())
	assert.Equal(t, "2+3*4", expr.Source())
}

func TestParseStructuralGrouping(t *testing.T) {
	expr, err := Parse("2*(4+3)")
	require.NoError(t, err)

	expected := []types.Node{
		lit("2", 0),
		types.NewOperator(types.OpMultiply, 1),
		types.NewGroup([]types.Node{
			lit("4", 3),
			types.NewOperator(types.OpAdd, 4),
			lit("3", 5),
		}, 2),
	}
	assert.Equal(t, expected, expr.Nodes())
}

func TestParseNestedGroups(t *testing.T) {
	expr, err := Parse("(1+(2+3))*2")
	require.NoError(t, err)

	nodes := expr.Nodes()
	require.Len(t, nodes, 3)

	outer := nodes[0]
	require.Equal(t, types.NodeGroup, outer.Type)
	require.Len(t, outer.Children, 3)

	inner := outer.Children[2]
	require.Equal(t, types.NodeGroup, inner.Type)
	assert.Equal(t, []types.Node{
		lit("2", 4),
		types.NewOperator(types.OpAdd, 5),
		lit("3", 6),
	}, inner.Children)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     types.ErrorCode
		position int
	}{
		{"unclosed parenthesis", "(1+2", types.ErrUnbalancedParens, 0},
		{"inner unclosed parenthesis", "1*((2+3)", types.ErrUnbalancedParens, 2},
		{"orphan closing parenthesis", "1+2)", types.ErrUnbalancedParens, 3},
		{"bare closing parenthesis", ")", types.ErrUnbalancedParens, 0},
		{"two decimal points", "1.2.3", types.ErrInvalidNumber, 0},
		{"lone decimal point", ".", types.ErrInvalidNumber, 0},
		{"unexpected character", "2$2", types.ErrUnexpectedCharacter, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)

			var calcErr *types.Error
			require.True(t, errors.As(err, &calcErr), "expected *types.Error, got %T", err)
			assert.Equal(t, tc.code, calcErr.Code)
			assert.Equal(t, tc.position, calcErr.Position)
		})
	}
}

func TestParseInvalidNumberKeepsToken(t *testing.T) {
	_, err := Parse("4.5.6+1")

	var calcErr *types.Error
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, types.ErrInvalidNumber, calcErr.Code)
	assert.Equal(t, "4.5.6", calcErr.Token)
	assert.Error(t, calcErr.Unwrap())
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Compile("((1))", WithMaxDepth(1))

	var calcErr *types.Error
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, types.ErrExpressionTooDeep, calcErr.Code)
	assert.Equal(t, 1, calcErr.Position)

	_, err = Compile("((1))", WithMaxDepth(2))
	assert.NoError(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	// An empty token stream parses; the evaluator rejects it.
	expr, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, expr.Nodes())
}
