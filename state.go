package abacus

// phase is the input state of a session. It replaces a set of interacting
// booleans; each action moves the session from one phase to the next.
type phase int

const (
	// phaseFresh: the next digit starts a new operand. Entered on reset,
	// after "=", after clear-entry and after a percent toggle.
	phaseFresh phase = iota

	// phaseTyping: the operand buffer holds live user input.
	phaseTyping

	// phasePreview: a binary operator was just applied and the buffer holds
	// the running total.
	phasePreview

	// phaseUnaryResult: an immediate unary operation produced the buffer and
	// its text already sits at the end of the expression trail.
	phaseUnaryResult

	// phasePendingUnary: a deferred unary operation was opened and waits for
	// its operand.
	phasePendingUnary
)

var phaseNames = [...]string{
	phaseFresh:        "fresh",
	phaseTyping:       "typing",
	phasePreview:      "preview",
	phaseUnaryResult:  "unary-result",
	phasePendingUnary: "pending-unary",
}

func (p phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// awaitingOperand reports whether the next digit replaces the buffer.
func (p phase) awaitingOperand() bool {
	return p != phaseTyping
}

// producedResult reports whether the buffer's value is already part of the
// expression trail.
func (p phase) producedResult() bool {
	return p == phasePreview || p == phaseUnaryResult
}

// DisplayMode tags what the main display currently shows.
type DisplayMode string

const (
	ModeInput  DisplayMode = "Input"
	ModeResult DisplayMode = "Result"
)

// Operator is a binary arithmetic operator.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

var operatorGlyphs = [...]struct{ display, eval string }{
	Add:      {" + ", "+"},
	Subtract: {" - ", "-"},
	Multiply: {" × ", "*"},
	Divide:   {" ÷ ", "/"},
}

func (op Operator) valid() bool {
	return op >= Add && op <= Divide
}

func (op Operator) fragment() fragment {
	g := operatorGlyphs[op]
	return fragment{display: g.display, eval: g.eval}
}

// String returns the operator in evaluator syntax.
func (op Operator) String() string {
	if !op.valid() {
		return "?"
	}
	return operatorGlyphs[op].eval
}

// Unary is a single-operand operation.
type Unary int

const (
	Square Unary = iota
	Sqrt
	Reciprocal
	Negate
)

func (u Unary) valid() bool {
	return u >= Square && u <= Negate
}

func (u Unary) String() string {
	switch u {
	case Square:
		return "square"
	case Sqrt:
		return "sqrt"
	case Reciprocal:
		return "reciprocal"
	case Negate:
		return "negate"
	}
	return "unknown"
}

// Constant is a named value that can be loaded into the operand buffer.
type Constant int

const (
	Pi Constant = iota
	Euler
)

// Snapshot is the observable state of a session after an action.
type Snapshot struct {
	Display string
	Trail   string
	Mode    DisplayMode
	History []string
	Memory  []string
	Fault   error
}
