package abacus

import (
	"math"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// AppendDigit types a digit or the decimal point into the operand buffer.
// Any other rune is ignored. Typed text is shown exactly as entered.
func (s *Session) AppendDigit(r rune) {
	if r != '.' && (r < '0' || r > '9') {
		s.logger.Debug("ignoring non-digit input", zap.String("token", string(r)))
		return
	}
	s.begin()

	if s.phase.awaitingOperand() {
		s.leaveUnaryResult()
		s.leaveFinished()
		s.input = ""
		s.percentShown = false
		s.phase = phaseTyping
	}
	s.mode = ModeInput

	switch {
	case r == '.':
		if strings.Contains(s.input, ".") {
			return
		}
		if s.input == "" || s.input == "-" {
			s.input += "0"
		}
	case s.input == "0":
		s.input = ""
	case s.input == "-0":
		s.input = "-"
	}
	s.input += string(r)
}

// ApplyOperator appends a binary operator to the trail and previews the
// running total. Pressing an operator directly after another one replaces
// it.
func (s *Session) ApplyOperator(op Operator) {
	if !op.valid() {
		s.logger.Debug("ignoring invalid operator", zap.Int("operator", int(op)))
		return
	}
	s.begin()

	if err := s.settlePercent(); err != nil {
		s.fail(err)
		return
	}

	s.leaveFinished()
	if !s.phase.producedResult() {
		s.trail.appendOperand(operandText(s.input))
	}
	s.trail.closePending()
	s.trail.appendOperator(op)
	s.chain = ""
	s.chainLogged = false

	s.preview()
	s.phase = phasePreview
	s.mode = ModeResult
}

// preview evaluates the trail without its trailing operator and shows the
// result. Failures leave the display alone: the expression is incomplete
// and will be evaluated again once more of it is entered.
func (s *Session) preview() {
	expr := s.trail.evalOperand()
	result, err := s.evaluate(expr)
	if err != nil {
		s.logger.Debug("preview evaluation failed", zap.String("expr", expr), zap.Error(err))
		return
	}
	s.input = result
	s.mode = ModeResult
}

// Evaluate finishes the expression ("="). On success the result replaces the
// main display and the calculation is added to history. A failure shows an
// error and resets the session. With no expression, only a typed operand is
// evaluated, so "5 =" records "5 = 5" and a repeated "=" does nothing.
func (s *Session) Evaluate() {
	s.begin()
	if s.trail.empty() && s.phase != phaseTyping {
		return
	}

	if isPercent(s.input) {
		if err := s.percentToDecimal(); err != nil {
			s.fail(err)
			return
		}
	}

	if !s.phase.producedResult() {
		switch {
		case s.input != "":
			s.trail.appendOperand(operandText(s.input))
		case s.trail.depth() > 0:
			s.trail.appendOperand("0")
		}
	}
	s.trail.closePending()
	s.trail.stripOperator()

	expr := s.trail.display
	result, err := s.evaluate(s.trail.eval)
	if err != nil {
		s.logger.Debug("evaluation failed", zap.String("expr", expr), zap.Error(err))
		s.reset()
		s.fault = err
		return
	}

	s.pushHistory(expr + " = " + result)
	s.trail.reset()
	s.finished = expr + " ="
	s.input = result
	s.phase = phaseFresh
	s.mode = ModeResult
	s.chain = ""
	s.chainLogged = false
}

// TogglePercent switches the main display between percent and decimal form.
//
// On freshly typed input the value is marked as a percentage as typed, so
// 50 becomes "50%". On a computed result, or on a value that has already been
// through percent form once, the value is scaled by 100 first, so a result of
// 2.5 becomes "250%". A percent display converts back by dividing by 100.
func (s *Session) TogglePercent() {
	s.begin()

	if isPercent(s.input) {
		if err := s.percentToDecimal(); err != nil {
			s.fail(err)
		}
		return
	}

	v, err := ParseDisplay(s.operand())
	if err != nil {
		s.fail(err)
		return
	}
	if s.mode == ModeResult || s.percentShown {
		v *= 100
	}
	text, err := FormatNumber(v)
	if err != nil {
		s.fail(err)
		return
	}

	s.leaveUnaryResult()
	s.input = text + percentMarker
	s.phase = phaseFresh
}

// percentToDecimal converts a percent display back to its decimal value.
func (s *Session) percentToDecimal() error {
	text, err := decimalOf(s.input)
	if err != nil {
		return err
	}
	s.input = text
	s.phase = phaseTyping
	s.percentShown = true
	return nil
}

// settlePercent replaces a percent display with its decimal value before the
// value takes part in a calculation.
func (s *Session) settlePercent() error {
	if !isPercent(s.input) {
		return nil
	}
	text, err := decimalOf(s.input)
	if err != nil {
		return err
	}
	s.input = text
	return nil
}

func decimalOf(percent string) (string, error) {
	v, err := ParseDisplay(percent)
	if err != nil {
		return "", err
	}
	return FormatNumber(v)
}

// operandText is the buffer as it enters the trail: "0" when empty and
// without a dangling decimal point.
func operandText(input string) string {
	text := strings.TrimSuffix(input, ".")
	if text == "" || text == "-" {
		return "0"
	}
	return text
}

// Clear resets the session (C). History and memory are kept.
func (s *Session) Clear() {
	s.reset()
}

// ClearEntry empties the operand buffer (CE) and keeps the trail. Cleared
// typed input enters the expression as 0; a cleared preview leaves the
// trailing operator open for replacement.
func (s *Session) ClearEntry() {
	s.begin()
	s.leaveUnaryResult()
	s.input = ""
	if s.phase != phasePreview {
		s.phase = phaseFresh
	}
}

// Backspace removes the last typed character. It only affects input the
// user is typing, never a computed value.
func (s *Session) Backspace() {
	s.begin()
	if s.phase != phaseTyping || s.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.input)
	s.input = s.input[:len(s.input)-size]
	if s.input == "-" {
		s.input = ""
	}
}

// InsertConstant loads pi or e into the operand buffer as typed input.
func (s *Session) InsertConstant(c Constant) {
	v := math.Pi
	if c == Euler {
		v = math.E
	}
	text, err := FormatNumber(v)
	if err != nil {
		return
	}
	s.begin()
	s.leaveUnaryResult()
	s.leaveFinished()
	s.input = text
	s.percentShown = false
	s.phase = phaseTyping
	s.mode = ModeInput
}
