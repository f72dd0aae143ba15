// Package prefilter provides fast whole-subject rejection filters built
// from literals extracted from a pattern tree.
//
// The engine matches whole subjects anchored at both ends, so a prefilter
// answers one question: can this subject possibly match? A false answer is
// definitive and the tree walk is skipped; a true answer still requires the
// walk. Prefilters check necessary conditions only and therefore never
// reject a subject the walker would have matched.
//
// The Builder selects checks from whatever literal information is
// available:
//   - a single required prefix → direct prefix compare
//   - a small prefix set → linear scan of prefix compares
//   - a large prefix set → Aho-Corasick containment automaton
//   - a required inner literal → SWAR substring search (simd.Memmem)
//   - a required suffix → direct suffix compare
//
// Several applicable checks are chained into a composite.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/retree/literal"
	"github.com/coregx/retree/simd"
)

// maxScanPrefixes is the largest prefix set checked by linear scan; larger
// sets go through an Aho-Corasick automaton instead.
const maxScanPrefixes = 8

// Prefilter decides whether a subject can possibly match the pattern its
// literals were extracted from.
type Prefilter interface {
	// Accepts reports whether subject passes this filter's necessary
	// condition. false means the pattern cannot match subject; true means
	// the full engine must decide.
	Accepts(subject []byte) bool

	// HeapBytes returns the approximate heap memory held by the filter,
	// for profiling and strategy diagnostics.
	HeapBytes() int
}

// Builder assembles a Prefilter from extracted literal information.
// Any of the inputs may be nil/empty; Build returns nil when nothing useful
// remains.
type Builder struct {
	prefixes *literal.Seq
	inner    []byte
	suffix   []byte
}

// NewBuilder creates a builder over the given extraction results.
func NewBuilder(prefixes *literal.Seq, inner, suffix []byte) *Builder {
	return &Builder{
		prefixes: prefixes,
		inner:    inner,
		suffix:   suffix,
	}
}

// Build selects and constructs the prefilter for the available literals.
// It returns nil when no check is worth running (for example, only an empty
// prefix is known).
func (b *Builder) Build() Prefilter {
	var checks []Prefilter

	if p := b.buildPrefix(); p != nil {
		checks = append(checks, p)
	}
	if len(b.suffix) > 0 {
		checks = append(checks, &suffixFilter{suffix: b.suffix})
	}
	// An inner literal no longer than the suffix or a lone prefix adds
	// nothing: containment is already implied.
	if len(b.inner) > 0 && len(b.inner) > len(b.suffix) {
		checks = append(checks, &innerFilter{lit: b.inner})
	}

	switch len(checks) {
	case 0:
		return nil
	case 1:
		return checks[0]
	default:
		return &composite{checks: checks}
	}
}

// buildPrefix constructs the prefix check, or nil when the prefix set is
// absent or contains an empty literal (which every subject satisfies).
func (b *Builder) buildPrefix() Prefilter {
	if b.prefixes == nil || b.prefixes.IsEmpty() {
		return nil
	}

	set := make([][]byte, 0, b.prefixes.Len())
	seen := make(map[string]struct{}, b.prefixes.Len())
	for _, l := range b.prefixes.Literals() {
		if l.Len() == 0 {
			return nil
		}
		if _, dup := seen[string(l.Bytes)]; dup {
			continue
		}
		seen[string(l.Bytes)] = struct{}{}
		set = append(set, l.Bytes)
	}

	if len(set) == 1 {
		return &prefixFilter{prefix: set[0]}
	}
	if len(set) <= maxScanPrefixes {
		return &prefixSetFilter{prefixes: set}
	}

	// Large sets: an Aho-Corasick automaton answers "does the subject
	// contain any of the prefixes" in one pass. Containment is weaker than
	// starts-with but still a necessary condition, and O(n) regardless of
	// set size.
	builder := ahocorasick.NewBuilder()
	for _, p := range set {
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		// Fall back to scanning; correctness does not depend on the
		// automaton.
		return &prefixSetFilter{prefixes: set}
	}
	return &ahoFilter{auto: auto, patterns: len(set)}
}

// prefixFilter requires the subject to start with one fixed literal.
type prefixFilter struct {
	prefix []byte
}

func (f *prefixFilter) Accepts(subject []byte) bool {
	return bytes.HasPrefix(subject, f.prefix)
}

func (f *prefixFilter) HeapBytes() int {
	return len(f.prefix)
}

// prefixSetFilter requires the subject to start with one of a small set of
// literals.
type prefixSetFilter struct {
	prefixes [][]byte
}

func (f *prefixSetFilter) Accepts(subject []byte) bool {
	for _, p := range f.prefixes {
		if bytes.HasPrefix(subject, p) {
			return true
		}
	}
	return false
}

func (f *prefixSetFilter) HeapBytes() int {
	total := 0
	for _, p := range f.prefixes {
		total += len(p)
	}
	return total
}

// ahoFilter requires the subject to contain one of many literals.
type ahoFilter struct {
	auto     *ahocorasick.Automaton
	patterns int
}

func (f *ahoFilter) Accepts(subject []byte) bool {
	return f.auto.IsMatch(subject)
}

func (f *ahoFilter) HeapBytes() int {
	// The automaton does not expose its size; estimate from pattern count.
	return f.patterns * 64
}

// innerFilter requires the subject to contain a fixed literal.
type innerFilter struct {
	lit []byte
}

func (f *innerFilter) Accepts(subject []byte) bool {
	if len(f.lit) == 1 {
		return simd.Memchr(subject, f.lit[0]) >= 0
	}
	return simd.Memmem(subject, f.lit) >= 0
}

func (f *innerFilter) HeapBytes() int {
	return len(f.lit)
}

// suffixFilter requires the subject to end with a fixed literal.
type suffixFilter struct {
	suffix []byte
}

func (f *suffixFilter) Accepts(subject []byte) bool {
	return bytes.HasSuffix(subject, f.suffix)
}

func (f *suffixFilter) HeapBytes() int {
	return len(f.suffix)
}

// composite chains several filters; all must accept.
type composite struct {
	checks []Prefilter
}

func (c *composite) Accepts(subject []byte) bool {
	for _, check := range c.checks {
		if !check.Accepts(subject) {
			return false
		}
	}
	return true
}

func (c *composite) HeapBytes() int {
	total := 0
	for _, check := range c.checks {
		total += check.HeapBytes()
	}
	return total
}
