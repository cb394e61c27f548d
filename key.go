package abacus

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// keyActions maps button labels to session actions. Labels are matched
// as given first, then lower-cased, then upper-cased.
var keyActions = map[string]func(*Session){
	"+": func(s *Session) { s.ApplyOperator(Add) },
	"-": func(s *Session) { s.ApplyOperator(Subtract) },
	"*": func(s *Session) { s.ApplyOperator(Multiply) },
	"x": func(s *Session) { s.ApplyOperator(Multiply) },
	"×": func(s *Session) { s.ApplyOperator(Multiply) },
	"/": func(s *Session) { s.ApplyOperator(Divide) },
	"÷": func(s *Session) { s.ApplyOperator(Divide) },

	"=":     (*Session).Evaluate,
	"enter": (*Session).Evaluate,
	"%":     (*Session).TogglePercent,

	"sqrt": func(s *Session) { s.ApplyUnary(Sqrt) },
	"√":    func(s *Session) { s.ApplyUnary(Sqrt) },
	"sqr":  func(s *Session) { s.ApplyUnary(Square) },
	"x²":   func(s *Session) { s.ApplyUnary(Square) },
	"1/x":  func(s *Session) { s.ApplyUnary(Reciprocal) },
	"neg":  func(s *Session) { s.ApplyUnary(Negate) },
	"(-)":  func(s *Session) { s.ApplyUnary(Negate) },
	"±":    func(s *Session) { s.ApplyUnary(Negate) },

	"C":         (*Session).Clear,
	"CE":        (*Session).ClearEntry,
	"⌫":         (*Session).Backspace,
	"back":      (*Session).Backspace,
	"backspace": (*Session).Backspace,

	"MS": (*Session).MemorySave,
	"M+": (*Session).MemoryAdd,
	"M-": (*Session).MemorySubtract,
	"MR": (*Session).MemoryRecall,
	"MC": (*Session).MemoryClear,

	"pi": func(s *Session) { s.InsertConstant(Pi) },
	"π":  func(s *Session) { s.InsertConstant(Pi) },
	"e":  func(s *Session) { s.InsertConstant(Euler) },
}

// Dispatch performs the action for a button label such as "7", ".", "+",
// "sqrt", "=", "CE" or "M+". Unknown labels return ErrUnknownKey and leave
// the session untouched.
func (s *Session) Dispatch(key string) error {
	if utf8.RuneCountInString(key) == 1 {
		if r, _ := utf8.DecodeRuneInString(key); r == '.' || (r >= '0' && r <= '9') {
			s.AppendDigit(r)
			return nil
		}
	}

	action, ok := keyActions[key]
	if !ok {
		action, ok = keyActions[strings.ToLower(key)]
	}
	if !ok {
		action, ok = keyActions[strings.ToUpper(key)]
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	action(s)
	return nil
}

// ParseKeys splits a whitespace-separated key script. A token made only of
// digits and decimal points is expanded into one key per character, so
// "12 + 3.5 =" yields 1 2 + 3 . 5 =.
func ParseKeys(script string) []string {
	var keys []string
	for _, field := range strings.Fields(script) {
		if isNumberToken(field) {
			for _, r := range field {
				keys = append(keys, string(r))
			}
			continue
		}
		keys = append(keys, field)
	}
	return keys
}

// Run dispatches every key in order and stops at the first unknown key.
func (s *Session) Run(keys ...string) error {
	for i, key := range keys {
		if err := s.Dispatch(key); err != nil {
			return fmt.Errorf("key %d: %w", i+1, err)
		}
	}
	return nil
}

func isNumberToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
