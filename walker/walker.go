// Package walker implements the backtracking tree walk that matches a
// parsed pattern against a subject string.
//
// Matching is one recursive operation dispatched over the closed node set of
// the syntax package. Backtracking uses cursor savepoints exclusively:
// before a speculative attempt the walker clones the cursor, restores the
// clone on failure and keeps it on success. The capture map is deliberately
// NOT rolled back on failure — captures written by the successful children
// of a failed branch stay in place, and a group nested inside a repeat keeps
// only the value from the last successful iteration.
//
// Two properties define the engine and are preserved here exactly:
//
//   - An alternation commits to the first branch that succeeds and never
//     revisits that choice, even when a later sibling fails because of it.
//   - A repeat is greedy and never gives iterations back. (a*)a can
//     therefore never match: the repeat consumes every 'a' and the trailing
//     literal finds none left.
package walker

import (
	"github.com/coregx/retree/internal/input"
	"github.com/coregx/retree/syntax"
)

// Captures maps a capture group number to the substring that group last
// matched. Group 0 is the whole subject on every successful match.
type Captures map[int]string

// Run matches root against the whole of subject.
//
// Run succeeds only when the root group matches AND no input remains; a
// prefix match with trailing input is an ordinary failure. On failure the
// captures built during the attempt are discarded in full.
//
// Run allocates only the capture map; repeated calls with the same tree and
// subject return identical results.
func Run(root *syntax.Group, subject string) (Captures, bool) {
	cur := input.NewCursor(subject)
	caps := make(Captures)

	if _, ok := match(root, &cur, caps); !ok {
		return nil, false
	}
	if !cur.Exhausted() {
		return nil, false
	}
	return caps, true
}

// match attempts to consume a prefix of the remaining input with n.
//
// On success it returns the exact substring consumed and leaves the cursor
// past it. On failure it returns "" with the cursor restored to where it was
// on entry; callers may rely on that.
func match(n syntax.Node, cur *input.Cursor, caps Captures) (string, bool) {
	switch n := n.(type) {
	case *syntax.Char:
		save := cur.Clone()
		r, ok := cur.Next()
		if !ok || r != n.R {
			cur.RestoreFrom(save)
			return "", false
		}
		return cur.Since(save), true

	case *syntax.Class:
		save := cur.Clone()
		r, ok := cur.Next()
		if !ok || !n.Matches(r) {
			cur.RestoreFrom(save)
			return "", false
		}
		return cur.Since(save), true

	case *syntax.Sequence:
		save := cur.Clone()
		for _, child := range n.Nodes {
			if _, ok := match(child, cur, caps); !ok {
				cur.RestoreFrom(save)
				return "", false
			}
		}
		return cur.Since(save), true

	case *syntax.Alternation:
		for _, br := range n.Branches {
			probe := cur.Clone()
			if text, ok := match(br, &probe, caps); ok {
				cur.RestoreFrom(probe)
				return text, true
			}
		}
		return "", false

	case *syntax.Group:
		text, ok := match(n.Body, cur, caps)
		if !ok {
			return "", false
		}
		caps[n.Num] = text
		return text, true

	case *syntax.Repeat:
		start := cur.Clone()
		last := cur.Clone()
		for {
			before := cur.Offset()
			if _, ok := match(n.Node, cur, caps); !ok {
				break
			}
			last = cur.Clone()
			if cur.Offset() == before {
				// The body succeeded without consuming anything, so every
				// further iteration would be identical. One empty success
				// is recorded (it may have written captures), then the
				// loop stops.
				break
			}
		}
		cur.RestoreFrom(last)
		return cur.Since(start), true

	default:
		return "", false
	}
}
