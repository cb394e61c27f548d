package abacus

import (
	"fmt"

	"go.uber.org/zap"
)

// unaryTemplate describes how a unary operation wraps its operand in each
// spelling, and how it is written in history.
type unaryTemplate struct {
	open   fragment
	close  fragment
	prefix string // history notation
	suffix string
}

var unaryTemplates = [...]unaryTemplate{
	Square: {
		open:   fragment{display: "", eval: "pow("},
		close:  fragment{display: "²", eval: ", 2)"},
		suffix: "²",
	},
	Sqrt: {
		open:   fragment{display: "√(", eval: "sqrt("},
		close:  fragment{display: ")", eval: ")"},
		prefix: "sqrt(",
		suffix: ")",
	},
	Reciprocal: {
		open:   fragment{display: "1/(", eval: "1/("},
		close:  fragment{display: ")", eval: ")"},
		prefix: "1/(",
		suffix: ")",
	},
	Negate: {
		open:   fragment{display: "-(", eval: "-("},
		close:  fragment{display: ")", eval: ")"},
		prefix: "negate(",
		suffix: ")",
	},
}

// wrap applies u's template around an operand.
func (u Unary) wrap(operand fragment) fragment {
	t := unaryTemplates[u]
	return fragment{
		display: t.open.display + operand.display + t.close.display,
		eval:    t.open.eval + operand.eval + t.close.eval,
	}
}

// notation writes u applied to operand the way history records it.
func (u Unary) notation(operand string) string {
	t := unaryTemplates[u]
	return t.prefix + operand + t.suffix
}

// check rejects operands outside u's domain before the evaluator sees them.
func (u Unary) check(v float64) error {
	switch {
	case u == Sqrt && v < 0:
		return fmt.Errorf("%w: square root of %v", ErrInvalidDomain, v)
	case u == Reciprocal && v == 0:
		return fmt.Errorf("%w: reciprocal of zero", ErrDivisionByZero)
	}
	return nil
}

// ApplyUnary applies a unary operation to the current value.
//
// Directly after a binary operator, before an operand is entered, the
// operation is deferred: only its opening is appended to the trail and it
// is closed by the next operator or "=". Otherwise it is evaluated at
// once, the result replaces the main display and the operand's text in the
// trail, and a history entry is recorded. Applying another operation straight after an immediate one
// nests them, so square root twice on 4 records sqrt(sqrt(4)) once.
func (s *Session) ApplyUnary(u Unary) {
	if !u.valid() {
		s.logger.Debug("ignoring invalid unary operation", zap.Int("unary", int(u)))
		return
	}
	s.begin()

	afterOperator := s.trail.endsWithOperator() && s.operandMissing()
	if err := s.settlePercent(); err != nil {
		s.fail(err)
		return
	}

	if afterOperator {
		s.trail.open(u)
		s.chain = ""
		s.phase = phasePendingUnary
		return
	}

	value, err := ParseDisplay(s.operand())
	if err != nil {
		s.fail(err)
		return
	}
	if err := u.check(value); err != nil {
		s.fail(err)
		return
	}
	valueStr, err := FormatNumber(value)
	if err != nil {
		s.fail(err)
		return
	}

	operand := fragment{display: valueStr, eval: valueStr}
	notation := valueStr
	chained := s.phase == phaseUnaryResult && s.chain != ""
	if chained {
		operand = s.trail.tailText()
		notation = s.chain
	}

	full := u.wrap(operand)
	result, err := s.evaluate(full.eval)
	if err != nil {
		s.fail(err)
		return
	}

	s.leaveFinished()
	s.trail.splice(full)

	s.input = result
	s.mode = ModeResult
	s.phase = phaseUnaryResult
	s.chain = u.notation(notation)

	entry := s.chain + " = " + result
	if chained && s.chainLogged && len(s.history) > 0 {
		s.history[0] = entry
	} else {
		s.pushHistory(entry)
	}
	s.chainLogged = true
}
