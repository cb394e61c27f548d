/*
	Package abacus implements the input state machine of a keypad calculator.

It turns discrete button presses into an arithmetic expression, shows a running total while the
expression grows, and keeps a history of finished calculations and a set of memory slots.

# Overview

A Session holds the state of one calculator window. It has no knowledge of any user interface:
a front-end calls one method per button and renders the outputs.

  - Display - the main display: typed input, a result, or an error text
  - Trail - the expression built so far, shown above the main display
  - Mode - whether the main display holds typed input or a result
  - History - finished calculations, newest first
  - Memory - stored values, newest first

# Key Features

  - Running Totals: every binary operator previews the value of the expression so far
  - Operator Replacement: pressing an operator right after another one replaces it
  - Unary Operations: square, square root, reciprocal and negate, applied at once or deferred
  - Percent Toggle: switches the main display between percent and decimal form
  - Memory Slots: MS, M+, M-, MR and MC
  - Pluggable Evaluation: any Evaluator can compute expressions, with optional memoization

# Basic Usage

Creating a session and pressing buttons:

	s := abacus.New()
	s.AppendDigit('2')
	s.ApplyOperator(abacus.Add)
	s.AppendDigit('3')
	s.ApplyOperator(abacus.Multiply) // Display() is "5"
	s.AppendDigit('4')
	s.Evaluate()

	fmt.Println(s.Display())    // 14
	fmt.Println(s.History()[0]) // 2 + 3 × 4 = 14

Driving a session with button labels:

	s := abacus.New()
	if err := s.Run(abacus.ParseKeys("4 sqrt sqrt")...); err != nil {
	    log.Fatal(err)
	}
	fmt.Println(s.Display()) // 1.4142135624

# Unary Operations

A unary operation pressed straight after a binary operator is deferred. Its opening is added to
the trail and the next operand is wrapped when the expression continues:

	9 + sqrt 16 =    →   9 + √(16) = 13

Anywhere else it is applied at once to the current value, which is replaced by the result.
Applying one operation after another nests them and records a single history entry:

	4 sqrt sqrt      →   sqrt(sqrt(4)) = 1.4142135624

# Number Formatting

Every value produced by the session goes through FormatNumber:

  - Integers: values within 1e-10 of an integer are shown without a fraction
  - Fixed: up to ten fraction digits, trailing zeros removed
  - Scientific: non-integers below 1e-7 or above 1e7 in magnitude, such as 1.5E-8

A trailing "%" marks a percentage. ParseDisplay reads such a value back as a fraction.

# Configuration Options

Sessions are configured with functional options:

	s := abacus.New(
	    abacus.WithHistoryLimit(100),
	    abacus.WithMemoryLimit(10),
	    abacus.WithEvaluator(abacus.NewMemoEvaluator(nil, 256)),
	    abacus.WithLogger(logger),
	)

# Error Handling

Failures never escape as errors from button methods. They are shown on the main display until
the next action, and Fault returns the error behind them:

  - ErrDivisionByZero: shown as "Cannot divide by zero"
  - ErrInvalidDomain: shown as "Invalid input", for example the square root of a negative number
  - ErrNumericParse: shown as "Not a number"
  - ErrMalformedExpression: shown as "Error"

A failed "=" also resets the session. A failed running-total preview is not shown at all.

	s.Run("5", "/", "0", "=")
	if errors.Is(s.Fault(), abacus.ErrDivisionByZero) {
	    // Display() is "Cannot divide by zero"
	}
*/
package abacus
