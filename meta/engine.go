package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/retree/literal"
	"github.com/coregx/retree/prefilter"
	"github.com/coregx/retree/syntax"
	"github.com/coregx/retree/walker"
)

// Engine executes whole-subject match attempts for one compiled pattern.
//
// An Engine is immutable after compilation: the tree, the literals, and the
// prefilter are all read-only, and each match attempt owns its cursor and
// capture map. Multiple goroutines may call Match concurrently on the same
// Engine. Statistics are kept with atomic operations.
type Engine struct {
	// stats MUST be the first field for 8-byte alignment of its uint64
	// counters on 32-bit platforms.
	stats Stats

	root       *syntax.Group
	groupCount int

	// minLen and maxLen bound the character count of any match;
	// maxLen is -1 when unbounded.
	minLen int
	maxLen int

	literals  *literal.Seq // UseLiteralSet only, in branch order
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
}

// Stats holds per-engine match counters. All fields are updated atomically;
// read them through Engine.Stats.
type Stats struct {
	// WalkerRuns counts tree walks executed.
	WalkerRuns uint64

	// LiteralSetRuns counts subjects decided by the literal-set scan.
	LiteralSetRuns uint64

	// PrefilterRejects counts subjects rejected by the prefilter.
	PrefilterRejects uint64

	// LengthRejects counts subjects rejected by the length bounds.
	LengthRejects uint64

	// Matches counts successful match attempts.
	Matches uint64

	// Misses counts failed match attempts.
	Misses uint64
}

// Match attempts to match the whole subject against the compiled pattern.
//
// On success it returns the capture map: group 0 maps to the entire subject
// and every other entry is the substring its group last matched. On failure
// the second result is false and no capture map is returned; a prefix match
// with trailing input is a failure like any other.
//
// Match is deterministic: identical engine and subject always produce an
// identical result.
func (e *Engine) Match(subject string) (walker.Captures, bool) {
	runes := utf8.RuneCountInString(subject)
	if runes < e.minLen || (e.maxLen >= 0 && runes > e.maxLen) {
		atomic.AddUint64(&e.stats.LengthRejects, 1)
		atomic.AddUint64(&e.stats.Misses, 1)
		return nil, false
	}

	if e.strategy == UseLiteralSet {
		atomic.AddUint64(&e.stats.LiteralSetRuns, 1)
		return e.matchLiteralSet(subject)
	}

	if e.prefilter != nil && !e.prefilter.Accepts([]byte(subject)) {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		atomic.AddUint64(&e.stats.Misses, 1)
		return nil, false
	}

	atomic.AddUint64(&e.stats.WalkerRuns, 1)
	caps, ok := walker.Run(e.root, subject)
	if !ok {
		atomic.AddUint64(&e.stats.Misses, 1)
		return nil, false
	}
	atomic.AddUint64(&e.stats.Matches, 1)
	return caps, true
}

// matchLiteralSet decides a match by scanning the ordered literal set.
//
// The scan reproduces the walker's alternation semantics: the first literal
// that is a prefix of the subject is the branch the walker would commit to,
// and the attempt succeeds only when that literal is the whole subject.
func (e *Engine) matchLiteralSet(subject string) (walker.Captures, bool) {
	for _, l := range e.literals.Literals() {
		if !hasPrefix(subject, l.Bytes) {
			continue
		}
		if len(l.Bytes) == len(subject) {
			atomic.AddUint64(&e.stats.Matches, 1)
			return walker.Captures{0: subject}, true
		}
		atomic.AddUint64(&e.stats.Misses, 1)
		return nil, false
	}
	atomic.AddUint64(&e.stats.Misses, 1)
	return nil, false
}

// hasPrefix is bytes.HasPrefix across a string and a byte slice, avoiding
// the conversion allocation on the literal-set hot path.
func hasPrefix(s string, prefix []byte) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if s[i] != b {
			return false
		}
	}
	return true
}

// IsMatch reports whether the whole subject matches, without materializing
// the capture map (the map is still built internally by the walker).
func (e *Engine) IsMatch(subject string) bool {
	_, ok := e.Match(subject)
	return ok
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// GroupCount returns the number of capture groups, including group 0.
func (e *Engine) GroupCount() int {
	return e.groupCount
}

// LengthBounds returns the character-count bounds of any match.
// max is -1 when unbounded.
func (e *Engine) LengthBounds() (min, max int) {
	return e.minLen, e.maxLen
}

// Root returns the parsed pattern tree. Callers must treat it as read-only.
func (e *Engine) Root() *syntax.Group {
	return e.root
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		WalkerRuns:       atomic.LoadUint64(&e.stats.WalkerRuns),
		LiteralSetRuns:   atomic.LoadUint64(&e.stats.LiteralSetRuns),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		LengthRejects:    atomic.LoadUint64(&e.stats.LengthRejects),
		Matches:          atomic.LoadUint64(&e.stats.Matches),
		Misses:           atomic.LoadUint64(&e.stats.Misses),
	}
}

// ResetStats zeroes the engine's counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.WalkerRuns, 0)
	atomic.StoreUint64(&e.stats.LiteralSetRuns, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.LengthRejects, 0)
	atomic.StoreUint64(&e.stats.Matches, 0)
	atomic.StoreUint64(&e.stats.Misses, 0)
}
