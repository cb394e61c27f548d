package abacus

import (
	"go.uber.org/zap"
)

// WithEvaluator sets the expression evaluator used for previews, unary
// operations and final results.
// The default is the built-in arithmetic evaluator.
//
// Example:
//
//	s := abacus.New(abacus.WithEvaluator(abacus.NewMemoEvaluator(nil, 256)))
func WithEvaluator(e Evaluator) Option {
	return func(s *Session) {
		if e != nil {
			s.evaluator = e
		}
	}
}

// WithLogger sets the logger. Swallowed preview failures and faults are
// logged at debug level. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHistoryLimit bounds the number of history entries kept. The oldest
// entries are dropped first. Zero means unbounded, which is the default.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		s.historyLimit = max(n, 0)
	}
}

// WithMemoryLimit bounds the number of memory slots kept.
func WithMemoryLimit(n int) Option {
	return func(s *Session) {
		s.memoryLimit = max(n, 0)
	}
}
