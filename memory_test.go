package abacus

import (
	"testing"
)

func TestMemory(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		display string
		memory  []string
	}{
		{"save", "7 MS", "7", []string{"7"}},
		{"save pushes a new slot", "1 MS 2 MS", "2", []string{"2", "1"}},
		{"add to newest slot", "7 MS 3 M+", "3", []string{"10"}},
		{"add on empty memory stores", "4 M+", "4", []string{"4"}},
		{"subtract from newest slot", "7 MS 2 M-", "2", []string{"5"}},
		{"subtract on empty memory", "4 M-", "4", nil},
		{"recall", "7 MS 3 M+ MR", "10", []string{"10"}},
		{"recall on empty memory", "5 MR", "5", nil},
		{"clear", "1 MS 2 MS MC", "2", nil},
		{"save a result", "2 + 3 = MS", "5", []string{"5"}},
		{"save a percentage", "50 % MS", "50%", []string{"0.5"}},
		{"fractions", "0.1 MS 0.2 M+", "0.2", []string{"0.3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.script)
			assertDisplay(t, s, tt.display)
			assertMemory(t, s, tt.memory...)
			assertNoFault(t, s)
		})
	}
}

func TestMemorySaveEndsOperand(t *testing.T) {
	// The next digit after MS starts a new operand.
	s := newTestSession(t, "1 2 MS 3")
	assertDisplay(t, s, "3")
	assertMemory(t, s, "12")
}

func TestMemoryRecallAsOperand(t *testing.T) {
	s := newTestSession(t, "7 MS C 2 + MR =")
	assertDisplay(t, s, "9")
	assertHistory(t, s, "2 + 7 = 9")
	assertMemory(t, s, "7")
}

func TestMemoryRecallReplacesUnaryResult(t *testing.T) {
	s := newTestSession(t, "3 MS 5 + 16 sqrt MR =")
	assertDisplay(t, s, "8")
	assertHistory(t, s, "5 + 3 = 8", "sqrt(16) = 4")
}

func TestMemoryLimit(t *testing.T) {
	s := newTestSession(t, "1 MS 2 MS 3 MS", WithMemoryLimit(2))
	assertMemory(t, s, "3", "2")
}

func TestHistoryLimit(t *testing.T) {
	s := newTestSession(t, "1 + 1 = 2 + 2 = 3 + 3 =", WithHistoryLimit(2))
	assertHistory(t, s, "3 + 3 = 6", "2 + 2 = 4")

	s = newTestSession(t, "1 + 1 = 2 + 2 = 3 + 3 =")
	assertHistory(t, s, "3 + 3 = 6", "2 + 2 = 4", "1 + 1 = 2")
}

func TestClearHistory(t *testing.T) {
	s := newTestSession(t, "1 + 1 = 5 MS")
	s.ClearHistory()
	assertHistory(t, s)
	assertMemory(t, s, "5")
	assertDisplay(t, s, "5")
}

func TestClearKeepsHistoryAndMemory(t *testing.T) {
	s := newTestSession(t, "1 + 1 = MS C")
	assertDisplay(t, s, "0")
	assertHistory(t, s, "1 + 1 = 2")
	assertMemory(t, s, "2")
}
