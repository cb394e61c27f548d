package abacus

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/gophersatwork/abacus/internal/arith"
)

// DefaultMemoSize is the number of results a MemoEvaluator keeps when no
// positive size is given.
const DefaultMemoSize = 256

// MemoEvaluator caches successful evaluations of another Evaluator, keyed by
// the xxHash of the expression text. Running-total previews evaluate the
// same prefixes again and again while an expression grows, so most of them
// are answered from the cache.
//
// Failures are never cached. A MemoEvaluator is safe for concurrent use and
// may be shared between sessions.
type MemoEvaluator struct {
	next  Evaluator
	limit int

	mu      sync.RWMutex
	entries map[uint64]memoEntry
	order   []uint64 // insertion order, oldest first
	hits    uint64
	misses  uint64
}

type memoEntry struct {
	expr  string // kept to rule out hash collisions
	value float64
}

// MemoStats reports cache effectiveness.
type MemoStats struct {
	Hits    uint64 // Evaluations answered from the cache
	Misses  uint64 // Evaluations passed to the wrapped evaluator
	Entries int    // Results currently cached
}

// NewMemoEvaluator wraps next. A nil next uses the built-in arithmetic
// evaluator; a size of zero or less uses DefaultMemoSize.
func NewMemoEvaluator(next Evaluator, size int) *MemoEvaluator {
	if next == nil {
		next = arith.New()
	}
	if size <= 0 {
		size = DefaultMemoSize
	}
	return &MemoEvaluator{
		next:    next,
		limit:   size,
		entries: make(map[uint64]memoEntry, size),
	}
}

// Evaluate returns the cached result for expr or evaluates and caches it.
func (m *MemoEvaluator) Evaluate(expr string) (float64, error) {
	key := xxhash.Sum64String(expr)

	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if ok && entry.expr == expr {
		m.mu.Lock()
		m.hits++
		m.mu.Unlock()
		return entry.value, nil
	}

	v, err := m.next.Evaluate(expr)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
	if err != nil {
		return 0, err
	}
	m.store(key, memoEntry{expr: expr, value: v})
	return v, nil
}

// store inserts an entry, evicting the oldest ones beyond the limit.
// Callers hold m.mu.
func (m *MemoEvaluator) store(key uint64, entry memoEntry) {
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = entry

	for len(m.order) > m.limit {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
}

// Stats returns hit, miss and size counters.
func (m *MemoEvaluator) Stats() MemoStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MemoStats{
		Hits:    m.hits,
		Misses:  m.misses,
		Entries: len(m.entries),
	}
}

// Reset drops all cached results and zeroes the counters.
func (m *MemoEvaluator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[uint64]memoEntry, m.limit)
	m.order = nil
	m.hits = 0
	m.misses = 0
}
