package types

import "fmt"

// ErrorCode identifies a class of evaluation failure.
type ErrorCode string

// Error codes grouped by family: S01xx lexical, S02xx structural,
// D10xx evaluation.
const (
	// S01xx: Lexical errors
	ErrUnexpectedCharacter ErrorCode = "S0101"
	ErrInvalidNumber       ErrorCode = "S0102"

	// S02xx: Structural errors
	ErrUnbalancedParens    ErrorCode = "S0201"
	ErrMalformedExpression ErrorCode = "S0202"
	ErrExpressionTooDeep   ErrorCode = "S0203"

	// D10xx: Evaluation errors
	ErrDivisionByZero  ErrorCode = "D1001"
	ErrNumberNotFinite ErrorCode = "D1002"
)

// Error represents a structured evaluation error.
//
// Every failure is terminal for the current call: no partial result is
// produced and the caller decides how to present the error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new structured error.
// Pass a negative position when no source location applies.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
