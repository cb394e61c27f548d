package abacus

import "strings"

// fragment is one token of the expression in both spellings: the text shown
// to the user and the text handed to the evaluator.
type fragment struct {
	display string
	eval    string
}

// trail is the expression built so far. The display and evaluator strings
// are only ever changed together, so they differ in spelling but never in
// structure.
type trail struct {
	display string
	eval    string

	// tail marks where the current operand's text begins in each string.
	// tailOp is the operator just before the mark, restored when the
	// operand is truncated away.
	tail   fragmentPos
	tailOp *fragment

	// trailing is the operator at the end of the trail, if any.
	trailing *fragment

	// pending holds the deferred unary operations still waiting for their
	// closing token, innermost last.
	pending []Unary
}

type fragmentPos struct {
	display int
	eval    int
}

func (t *trail) mark() {
	t.tail = fragmentPos{display: len(t.display), eval: len(t.eval)}
	t.tailOp = t.trailing
}

// append adds f to both strings.
func (t *trail) append(f fragment) {
	t.display += f.display
	t.eval += f.eval
	t.trailing = nil
}

// appendOperand adds the literal operand text to both strings.
func (t *trail) appendOperand(text string) {
	t.append(fragment{display: text, eval: text})
}

// appendOperator adds op, replacing an operator already at the end.
func (t *trail) appendOperator(op Operator) {
	t.stripOperator()
	f := op.fragment()
	t.append(f)
	t.trailing = &f
	t.mark()
}

// endsWithOperator reports whether the last token is a binary operator.
func (t *trail) endsWithOperator() bool {
	return t.trailing != nil
}

// stripOperator removes a trailing binary operator. It reports whether one
// was removed.
func (t *trail) stripOperator() bool {
	if t.trailing == nil {
		return false
	}
	t.display = strings.TrimSuffix(t.display, t.trailing.display)
	t.eval = strings.TrimSuffix(t.eval, t.trailing.eval)
	t.trailing = nil
	t.tail.display = min(t.tail.display, len(t.display))
	t.tail.eval = min(t.tail.eval, len(t.eval))
	t.tailOp = nil
	return true
}

// evalOperand returns the evaluator string without a trailing operator.
func (t *trail) evalOperand() string {
	if t.trailing == nil {
		return t.eval
	}
	return strings.TrimSuffix(t.eval, t.trailing.eval)
}

// open appends the opening of a deferred unary operation.
func (t *trail) open(u Unary) {
	t.append(unaryTemplates[u].open)
	t.pending = append(t.pending, u)
	t.mark()
}

// depth is the number of unary operations awaiting their closing token.
func (t *trail) depth() int {
	return len(t.pending)
}

// closePending appends the closing token of every deferred unary operation,
// innermost first.
func (t *trail) closePending() {
	for i := len(t.pending) - 1; i >= 0; i-- {
		t.append(unaryTemplates[t.pending[i]].close)
	}
	t.pending = nil
}

// tailText returns the current operand's text.
func (t *trail) tailText() fragment {
	return fragment{
		display: t.display[t.tail.display:],
		eval:    t.eval[t.tail.eval:],
	}
}

// truncateTail drops the current operand's text.
func (t *trail) truncateTail() {
	t.display = t.display[:t.tail.display]
	t.eval = t.eval[:t.tail.eval]
	t.trailing = t.tailOp
}

// splice replaces the current operand's text with f.
func (t *trail) splice(f fragment) {
	t.truncateTail()
	t.append(f)
}

func (t *trail) empty() bool {
	return t.display == "" && t.eval == ""
}

func (t *trail) reset() {
	*t = trail{}
}

// signReplacer folds adjacent sign pairs left behind when a minus operator
// is followed by a negative operand.
var signReplacer = strings.NewReplacer("--", "+", "+-", "-", "-+", "-")

// normalizeSigns collapses "--" into "+" and "+-" or "-+" into "-" until no
// such pair remains.
func normalizeSigns(expr string) string {
	for {
		next := signReplacer.Replace(expr)
		if next == expr {
			return expr
		}
		expr = next
	}
}
