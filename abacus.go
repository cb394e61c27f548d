package abacus

import (
	"errors"
	"math"

	"github.com/gophersatwork/abacus/internal/arith"
	"go.uber.org/zap"
)

// Evaluator evaluates an infix arithmetic expression using + - * /, unary
// minus, parentheses, pow(x, n) and sqrt(x).
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(expr string) (float64, error)

// Evaluate calls f(expr).
func (f EvaluatorFunc) Evaluate(expr string) (float64, error) {
	return f(expr)
}

// Session is the input state machine of one calculator window. It turns
// discrete key actions into an expression trail, previews running totals
// and records finished calculations in its history.
//
// A Session is not safe for concurrent use; callers serialize all actions.
type Session struct {
	evaluator    Evaluator
	logger       *zap.Logger
	historyLimit int
	memoryLimit  int

	phase        phase
	mode         DisplayMode
	input        string // operand buffer
	percentShown bool   // the operand has been round-tripped through percent
	trail        trail

	finished    string // trail shown after "=" until the next action replaces it
	chain       string // history notation of the current immediate unary chain
	chainLogged bool   // history[0] belongs to the current chain
	fault       error

	history []string
	memory  []string
}

// Option configures a Session.
type Option func(*Session)

// New creates a session in its reset state.
func New(options ...Option) *Session {
	s := &Session{
		evaluator: arith.New(),
		logger:    zap.NewNop(),
	}

	// Apply options
	for _, option := range options {
		option(s)
	}

	s.reset()
	return s
}

// Display returns the main display text.
func (s *Session) Display() string {
	if s.fault != nil {
		return faultText(s.fault)
	}
	if s.input == "" {
		return "0"
	}
	return s.input
}

// Trail returns the expression trail shown above the main display.
func (s *Session) Trail() string {
	if s.finished != "" {
		return s.finished
	}
	return s.trail.display
}

// Mode reports whether the main display shows typed input or a result.
func (s *Session) Mode() DisplayMode {
	return s.mode
}

// Fault returns the error behind the current error display, or nil.
func (s *Session) Fault() error {
	return s.fault
}

// History returns the history entries, newest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Memory returns the memory slots, newest first.
func (s *Session) Memory() []string {
	return append([]string(nil), s.memory...)
}

// Snapshot returns all observable outputs at once.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Display: s.Display(),
		Trail:   s.Trail(),
		Mode:    s.mode,
		History: s.History(),
		Memory:  s.Memory(),
		Fault:   s.fault,
	}
}

// reset returns the session to its initial state. History and memory are
// kept.
func (s *Session) reset() {
	s.phase = phaseFresh
	s.mode = ModeInput
	s.input = ""
	s.percentShown = false
	s.trail.reset()
	s.finished = ""
	s.chain = ""
	s.chainLogged = false
	s.fault = nil
}

// begin starts an action. A fault is only shown until the next action.
func (s *Session) begin() {
	s.fault = nil
}

// fail shows err on the main display.
func (s *Session) fail(err error) {
	s.fault = err
	s.logger.Debug("calculator fault",
		zap.Error(err),
		zap.String("phase", s.phase.String()),
		zap.String("trail", s.trail.display))
}

// operandMissing reports whether nothing has been entered since the last
// binary operator.
func (s *Session) operandMissing() bool {
	return s.phase == phasePreview || (s.phase == phaseFresh && s.input == "")
}

// operand returns the operand buffer, or "0" when it is empty.
func (s *Session) operand() string {
	if s.input == "" {
		return "0"
	}
	return s.input
}

// evaluate runs expr through the evaluator and formats the result.
func (s *Session) evaluate(expr string) (string, error) {
	expr = normalizeSigns(expr)
	v, err := s.evaluator.Evaluate(expr)
	if err != nil {
		return "", &EvaluationError{Expr: expr, Err: classify(err)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", &EvaluationError{Expr: expr, Err: ErrInvalidDomain}
	}
	out, err := FormatNumber(v)
	if err != nil {
		return "", &EvaluationError{Expr: expr, Err: err}
	}
	return out, nil
}

// classify maps evaluator errors onto the session's error taxonomy. Errors
// that match none of the known kinds count as malformed expressions.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrDivisionByZero), errors.Is(err, ErrInvalidDomain),
		errors.Is(err, ErrMalformedExpression):
		return err
	case errors.Is(err, arith.ErrDivisionByZero):
		return &kindError{kind: ErrDivisionByZero, err: err}
	case errors.Is(err, arith.ErrInvalidDomain):
		return &kindError{kind: ErrInvalidDomain, err: err}
	default:
		return &kindError{kind: ErrMalformedExpression, err: err}
	}
}

// leaveUnaryResult discards the text of an immediate unary result from the
// trail when a new operand is about to replace it.
func (s *Session) leaveUnaryResult() {
	if s.phase == phaseUnaryResult {
		s.trail.truncateTail()
	}
	s.chain = ""
	s.chainLogged = false
}

// leaveFinished drops the "… =" trail shown after an evaluation.
func (s *Session) leaveFinished() {
	if s.finished != "" {
		s.finished = ""
		s.trail.reset()
	}
}

func (s *Session) pushHistory(entry string) {
	s.history = pushFront(s.history, entry, s.historyLimit)
}

// pushFront prepends v and drops the oldest entries beyond limit. A limit of
// zero or less means unbounded.
func pushFront(list []string, v string, limit int) []string {
	list = append([]string{v}, list...)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
