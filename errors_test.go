package abacus

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gophersatwork/abacus/internal/arith"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     error
		expected string
	}{
		{
			"evaluator syntax error",
			fmt.Errorf("%w: unexpected end of expression", arith.ErrMalformed),
			ErrMalformedExpression,
			"malformed expression: unexpected end of expression",
		},
		{"evaluator division", arith.ErrDivisionByZero, ErrDivisionByZero, "division by zero"},
		{
			"evaluator domain",
			fmt.Errorf("%w: sqrt(-4)", arith.ErrInvalidDomain),
			ErrInvalidDomain,
			"invalid input: invalid domain: sqrt(-4)",
		},
		{"foreign error", errors.New("boom"), ErrMalformedExpression, "malformed expression: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !errors.Is(got, tt.kind) {
				t.Errorf("classify(%v) does not match %v", tt.err, tt.kind)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classify(%v) lost the evaluator error", tt.err)
			}
			if got.Error() != tt.expected {
				t.Errorf("classify(%v) = %q, expected %q", tt.err, got.Error(), tt.expected)
			}
		})
	}
}

func TestEvaluationErrorMessage(t *testing.T) {
	boom := EvaluatorFunc(func(expr string) (float64, error) {
		return 0, fmt.Errorf("%w: unexpected end of expression", arith.ErrMalformed)
	})
	s := newTestSession(t, "1 + 2 =", WithEvaluator(boom))
	assertDisplay(t, s, "Error")

	var evalErr *EvaluationError
	if !errors.As(s.Fault(), &evalErr) {
		t.Fatalf("Fault() = %T, expected *EvaluationError", s.Fault())
	}
	msg := evalErr.Error()
	if n := strings.Count(msg, "malformed expression"); n != 1 {
		t.Errorf("Error() = %q repeats the error kind %d times", msg, n)
	}
	if !errors.Is(s.Fault(), ErrMalformedExpression) || !errors.Is(s.Fault(), arith.ErrMalformed) {
		t.Errorf("Fault() = %v, expected both malformed expression errors", s.Fault())
	}
}
