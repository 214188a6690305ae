package gocalc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/evaluator"
	"github.com/sandrolain/gocalc/pkg/types"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2+3*4", "14"},
		{"2*3+4", "10"},
		{"2^3*2", "16"},
		{"2*(4+3)", "14"},
		{"(1+(2+3))*2", "12"},
		{"8/4/2", "1"},
		{"10-3-2", "5"},
		{"0.1+0.2", "0.3"},
		{"  2 + 3 * ( 4 - 1 )  ", "11"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result, err := gocalc.Eval(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.String())
		})
	}
}

func TestEvalErrorCodes(t *testing.T) {
	tests := []struct {
		input string
		code  types.ErrorCode
	}{
		{"5/0", types.ErrDivisionByZero},
		{"(1+2", types.ErrUnbalancedParens},
		{"1+2)", types.ErrUnbalancedParens},
		{"1++2", types.ErrMalformedExpression},
		{"*3+4", types.ErrMalformedExpression},
		{"", types.ErrMalformedExpression},
		{"1.2.3", types.ErrInvalidNumber},
		{"1+x", types.ErrUnexpectedCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := gocalc.Eval(tc.input)
			require.Error(t, err)

			var calcErr *types.Error
			require.True(t, errors.As(err, &calcErr), "expected *types.Error, got %T", err)
			assert.Equal(t, tc.code, calcErr.Code)
		})
	}
}

// Wrapping any well-formed expression in parentheses must not change its
// value.
func TestEvalGroupingIdempotence(t *testing.T) {
	exprs := []string{
		"7",
		"2+3*4",
		"8/4/2",
		"(1+(2+3))*2",
		"0.1+0.2",
		"2^3^2",
	}

	for _, input := range exprs {
		t.Run(input, func(t *testing.T) {
			plain, err := gocalc.Eval(input)
			require.NoError(t, err)

			wrapped, err := gocalc.Eval("(" + input + ")")
			require.NoError(t, err)

			assert.True(t, plain.Equal(wrapped), "%s != (%s): %s vs %s", input, input, plain, wrapped)
		})
	}
}

func TestCompileReuse(t *testing.T) {
	expr, err := gocalc.Compile("2^10/8")
	require.NoError(t, err)
	assert.Equal(t, "2^10/8", expr.Source())

	eval := evaluator.New()
	for i := 0; i < 3; i++ {
		result, err := eval.Eval(context.Background(), expr)
		require.NoError(t, err)
		assert.Equal(t, "128", result.String())
	}
}

func TestEvalWithContext(t *testing.T) {
	result, err := gocalc.EvalWithContext(context.Background(), "3*3")
	require.NoError(t, err)
	assert.Equal(t, "9", result.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gocalc.EvalWithContext(ctx, "3*3")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMustCompile(t *testing.T) {
	expr := gocalc.MustCompile("1+1")
	assert.Equal(t, "1+1", expr.Source())

	assert.PanicsWithValue(t,
		`gocalc: Compile("("): S0201 at position 0: unclosed parenthesis`,
		func() { gocalc.MustCompile("(") })
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, gocalc.Version())
}
