// Package literal provides types and operations for literal byte sequences
// extracted from a pattern tree.
//
// The engine matches whole subjects only, so literals are used for cheap
// rejection: a subject that does not start with any extracted prefix, does
// not end with the required suffix, or does not contain a required inner
// literal cannot possibly match and never reaches the tree walk.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that may begin (or end) a match.
//   - A Seq is an ordered set of alternative literals; order follows the
//     pattern's branch order and is significant, because the engine commits
//     to the first alternation branch that succeeds.
package literal

import (
	"bytes"
)

// Literal represents a literal byte sequence extracted from a pattern.
//
// Complete reports whether the literal covers an entire possible match
// (true) or only a leading/trailing part of one (false). A Seq in which
// every literal is complete describes the full match language of the
// pattern fragment it was extracted from.
type Literal struct {
	// Bytes is the literal byte sequence.
	Bytes []byte

	// Complete indicates the literal is an entire possible match, not just
	// a prefix or suffix of one.
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is an ordered sequence of alternative literals.
//
// Order is preserved through every operation except Dedup, which keeps the
// first occurrence of a duplicate. Prefilter construction may reorder copies
// of the data it takes out of a Seq, but the Seq itself never reorders.
type Seq struct {
	lits []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Push appends a literal, preserving order.
func (s *Seq) Push(l Literal) {
	s.lits = append(s.lits, l)
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// AllComplete reports whether every literal in the sequence is complete.
// An empty sequence is not considered complete.
func (s *Seq) AllComplete() bool {
	if len(s.lits) == 0 {
		return false
	}
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// MarkIncomplete clears the Complete flag on every literal.
func (s *Seq) MarkIncomplete() {
	for i := range s.lits {
		s.lits[i].Complete = false
	}
}

// Dedup removes duplicate literals, keeping the first occurrence of each.
// Completeness is ignored when comparing; a later incomplete duplicate of an
// earlier complete literal is dropped.
func (s *Seq) Dedup() {
	seen := make(map[string]struct{}, len(s.lits))
	out := s.lits[:0]
	for _, l := range s.lits {
		key := string(l.Bytes)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	s.lits = out
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// LongestCommonPrefix returns the longest prefix shared by every literal in
// the sequence, or nil for an empty sequence.
func (s *Seq) LongestCommonPrefix() []byte {
	if len(s.lits) == 0 {
		return nil
	}
	prefix := s.lits[0].Bytes
	for _, l := range s.lits[1:] {
		prefix = commonPrefix(prefix, l.Bytes)
		if len(prefix) == 0 {
			return nil
		}
	}
	return prefix
}

// LongestCommonSuffix returns the longest suffix shared by every literal in
// the sequence, or nil for an empty sequence.
func (s *Seq) LongestCommonSuffix() []byte {
	if len(s.lits) == 0 {
		return nil
	}
	suffix := s.lits[0].Bytes
	for _, l := range s.lits[1:] {
		suffix = commonSuffix(suffix, l.Bytes)
		if len(suffix) == 0 {
			return nil
		}
	}
	return suffix
}

// Literals returns the underlying literal slice. The slice is shared;
// callers must not mutate it.
func (s *Seq) Literals() []Literal {
	return s.lits
}

// String returns a debug representation of the sequence.
func (s *Seq) String() string {
	var b bytes.Buffer
	b.WriteString("seq[")
	for i, l := range s.lits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(l.String())
	}
	b.WriteString("]")
	return b.String()
}

func commonPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func commonSuffix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return a[len(a)-i:]
}
