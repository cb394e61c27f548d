package abacus

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMain(t *testing.M) {
	code := t.Run()

	os.Exit(code)
}

// newTestSession creates a session and presses the keys of script.
func newTestSession(t *testing.T, script string, options ...Option) *Session {
	t.Helper()
	s := New(options...)
	press(t, s, script)
	return s
}

// press runs a key script against s.
func press(t *testing.T, s *Session, script string) {
	t.Helper()
	if err := s.Run(ParseKeys(script)...); err != nil {
		t.Fatalf("Failed to run %q: %v", script, err)
	}
}

func assertDisplay(t *testing.T, s *Session, expected string) {
	t.Helper()
	if got := s.Display(); got != expected {
		t.Errorf("Display() = %q, expected %q\n%s", got, expected, s.Dump())
	}
}

func assertTrail(t *testing.T, s *Session, expected string) {
	t.Helper()
	if got := s.Trail(); got != expected {
		t.Errorf("Trail() = %q, expected %q\n%s", got, expected, s.Dump())
	}
}

func assertMode(t *testing.T, s *Session, expected DisplayMode) {
	t.Helper()
	if got := s.Mode(); got != expected {
		t.Errorf("Mode() = %q, expected %q\n%s", got, expected, s.Dump())
	}
}

func assertHistory(t *testing.T, s *Session, expected ...string) {
	t.Helper()
	if diff := cmp.Diff(expected, s.History(), cmpEmptyAsNil); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
}

func assertMemory(t *testing.T, s *Session, expected ...string) {
	t.Helper()
	if diff := cmp.Diff(expected, s.Memory(), cmpEmptyAsNil); diff != "" {
		t.Errorf("Memory() mismatch (-want +got):\n%s", diff)
	}
}

func assertNoFault(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Fault(); err != nil {
		t.Errorf("Unexpected fault: %v\n%s", err, s.Dump())
	}
}

// cmpEmptyAsNil treats nil and empty slices as equal.
var cmpEmptyAsNil = cmp.FilterValues(func(x, y []string) bool {
	return len(x) == 0 && len(y) == 0
}, cmp.Ignore())
