package abacus

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrDivisionByZero is reported when an expression or a reciprocal divides by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidDomain is reported for math outside a function's domain,
	// such as the square root of a negative number.
	ErrInvalidDomain = errors.New("invalid input")

	// ErrMalformedExpression is reported when the evaluator rejects the syntax
	// of an expression.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrNumericParse is reported when the main display cannot be read as a number.
	ErrNumericParse = errors.New("not a number")

	// ErrNotFinite is returned by FormatNumber for NaN and infinities.
	ErrNotFinite = errors.New("value is not finite")

	// ErrUnknownKey is returned by Dispatch for labels that map to no action.
	ErrUnknownKey = errors.New("unknown key")
)

// EvaluationError records the expression that failed to evaluate.
type EvaluationError struct {
	Expr string // evaluator-syntax expression
	Err  error  // one of the sentinel errors, possibly wrapped
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	if e.Expr == "" {
		return fmt.Sprintf("evaluation failed: %v", e.Err)
	}
	return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// kindError tags an evaluator error with the session error kind it maps to.
// Both match with errors.Is; the kind is only spelled out when the
// evaluator's message does not already start with it.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	msg := e.err.Error()
	if strings.HasPrefix(msg, e.kind.Error()) {
		return msg
	}
	return e.kind.Error() + ": " + msg
}

// Unwrap returns both the kind and the evaluator error.
func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// faultText is the main-display text shown while err is the session fault.
func faultText(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return "Cannot divide by zero"
	case errors.Is(err, ErrInvalidDomain), errors.Is(err, ErrNotFinite):
		return "Invalid input"
	case errors.Is(err, ErrNumericParse):
		return "Not a number"
	default:
		return "Error"
	}
}
