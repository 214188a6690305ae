package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sandrolain/gocalc/pkg/types"
)

// Parser builds a node sequence from the lexical token stream.
//
// Parsing is a single left-to-right pass: literals and operators are
// appended to the current sequence, an opening parenthesis pushes a fresh
// sequence, and a closing parenthesis splices the finished sequence back
// into its parent as one group node.
type Parser struct {
	lexer *Lexer
	input string
	opts  CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		lexer: NewLexer(input),
		input: input,
		opts:  options,
	}
}

// Parse consumes the whole token stream and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	nodes, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	return types.NewExpression(nodes, p.input), nil
}

// frame is one nesting level of the sequence under construction.
type frame struct {
	nodes []types.Node
	pos   int // position of the opening parenthesis
}

func (p *Parser) parseSequence() ([]types.Node, error) {
	current := frame{}
	var stack []frame

	for {
		tok := p.lexer.Next()

		switch tok.Type {
		case TokenError:
			return nil, p.lexer.Error()

		case TokenEOF:
			if len(stack) > 0 {
				return nil, types.NewError(types.ErrUnbalancedParens,
					"unclosed parenthesis", current.pos)
			}
			return current.nodes, nil

		case TokenNumber:
			value, err := decimal.NewFromString(tok.Value)
			if err != nil {
				return nil, types.NewError(types.ErrInvalidNumber,
					fmt.Sprintf("invalid number literal %q", tok.Value),
					tok.Position).WithToken(tok.Value).WithCause(err)
			}
			current.nodes = append(current.nodes, types.NewLiteral(value, tok.Position))

		case TokenParenOpen:
			if len(stack)+1 > p.opts.MaxDepth {
				return nil, types.NewError(types.ErrExpressionTooDeep,
					fmt.Sprintf("parenthesis nesting exceeds %d levels", p.opts.MaxDepth),
					tok.Position)
			}
			stack = append(stack, current)
			current = frame{pos: tok.Position}

		case TokenParenClose:
			if len(stack) == 0 {
				return nil, types.NewError(types.ErrUnbalancedParens,
					"closing parenthesis without a matching open", tok.Position)
			}
			group := types.NewGroup(current.nodes, current.pos)
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current.nodes = append(current.nodes, group)

		default:
			op, ok := operatorFor(tok.Type)
			if !ok {
				return nil, types.NewError(types.ErrMalformedExpression,
					fmt.Sprintf("unexpected token %s", tok.Type), tok.Position)
			}
			current.nodes = append(current.nodes, types.NewOperator(op, tok.Position))
		}
	}
}

// operatorFor maps an operator token type to its operator kind.
func operatorFor(tt TokenType) (types.Operator, bool) {
	switch tt {
	case TokenPlus:
		return types.OpAdd, true
	case TokenMinus:
		return types.OpSubtract, true
	case TokenMult:
		return types.OpMultiply, true
	case TokenDiv:
		return types.OpDivide, true
	case TokenCaret:
		return types.OpPower, true
	default:
		return 0, false
	}
}
