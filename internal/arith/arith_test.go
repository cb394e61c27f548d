package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"42", 42},
		{"2+3", 5},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"16/4/2", 2},
		{"-3+5", 2},
		{"--3", 3},
		{"+3", 3},
		{"2*-3", -6},
		{"-(5)", -5},
		{"1.5E8", 1.5e8},
		{"1E-8*100000000", 1},
		{"sqrt(16)", 4},
		{"sqrt(sqrt(16))", 2},
		{"pow(3, 2)", 9},
		{"pow(pow(3, 2), 2)", 81},
		{"5+pow(-(2), 2)", 9},
		{"1/(4)", 0.25},
		{" 2 +  3 ", 5},
		{"0.1+0.2", 0.30000000000000004},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEvaluate_Fail(t *testing.T) {
	tests := []struct {
		expr     string
		expected error
	}{
		{"", ErrMalformed},
		{"   ", ErrMalformed},
		{"2+", ErrMalformed},
		{"2 3", ErrMalformed},
		{"(2+3", ErrMalformed},
		{"2+3)", ErrMalformed},
		{"foo(2)", ErrMalformed},
		{"sqrt", ErrMalformed},
		{"sqrt()", ErrMalformed},
		{"pow(2)", ErrMalformed},
		{"pow(2, 3, 4)", ErrMalformed},
		{"2 # 3", ErrMalformed},
		{"1/0", ErrDivisionByZero},
		{"5/(2-2)", ErrDivisionByZero},
		{"sqrt(-4)", ErrInvalidDomain},
		{"pow(10, 400)", ErrInvalidDomain},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := e.Evaluate(tt.expr)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestEvaluate_Reusable(t *testing.T) {
	e := New()

	_, err := e.Evaluate("1/0")
	require.Error(t, err)

	v, err := e.Evaluate("sqrt(2)")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, v, 1e-15)
}
