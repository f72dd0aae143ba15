// Package syntax defines the pattern tree used by the retree engine and the
// recursive-descent parser that builds it.
//
// The grammar, by precedence (highest first):
//
//	atom        = literal char | escape | character class | group
//	sequence    = atom*          (implicit concatenation)
//	alternation = sequence ('|' sequence)*
//	group       = '(' alternation ')'
//
// The postfix operators '*' and '+' bind to the preceding atom. '+' is
// desugared during parsing into the atom followed by a Repeat that shares
// the same node, so a parsed tree never contains a one-or-more variant.
//
// A parsed pattern is rooted at an implicit outer Group numbered 0. Nested
// groups are numbered in order of their opening parenthesis, depth-first,
// left-to-right.
//
// The tree is immutable after parsing and safe to match concurrently from
// any number of goroutines.
package syntax

// Kind discriminates the closed set of pattern tree node variants.
type Kind int

const (
	// KindChar is a single literal character.
	KindChar Kind = iota

	// KindClass is a character class: one character matched by set membership.
	KindClass

	// KindSequence is an ordered concatenation of nodes.
	KindSequence

	// KindAlternation is an ordered list of alternative sequences.
	KindAlternation

	// KindGroup is a numbered capturing group wrapping an alternation.
	KindGroup

	// KindRepeat is a greedy zero-or-more repetition of one node.
	KindRepeat
)

// String returns the variant name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindClass:
		return "Class"
	case KindSequence:
		return "Sequence"
	case KindAlternation:
		return "Alternation"
	case KindGroup:
		return "Group"
	case KindRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// Node is one node of a pattern tree.
//
// The variant set is closed: Char, Class, Sequence, Alternation, Group and
// Repeat are the only implementations. Consumers dispatch with a type
// switch; Node itself carries no behavior beyond its Kind.
type Node interface {
	Kind() Kind
}

// Char matches exactly one input character equal to R.
type Char struct {
	R rune
}

// Kind returns KindChar.
func (*Char) Kind() Kind { return KindChar }

// Class matches exactly one input character by set membership.
//
// Membership of runes below 128 is answered from a bitmap; larger runes go
// through an overflow map. Both indexes are built once by NewClass and never
// mutated afterwards.
type Class struct {
	// Elems lists the class members in pattern order. It is retained for
	// rendering; membership tests use the precomputed indexes below.
	Elems []rune

	// Negated inverts the membership test: the class matches any single
	// character that is NOT an element.
	Negated bool

	ascii [2]uint64
	extra map[rune]struct{}
}

// NewClass builds a character class from its members.
//
// Example:
//
//	cls := syntax.NewClass([]rune{'a', 'b', 'c'}, false)
//	cls.Matches('b') // true
//	cls.Matches('z') // false
func NewClass(elems []rune, negated bool) *Class {
	c := &Class{
		Elems:   elems,
		Negated: negated,
	}
	for _, r := range elems {
		if r >= 0 && r < 128 {
			c.ascii[r>>6] |= 1 << (uint(r) & 63)
			continue
		}
		if c.extra == nil {
			c.extra = make(map[rune]struct{})
		}
		c.extra[r] = struct{}{}
	}
	return c
}

// Kind returns KindClass.
func (*Class) Kind() Kind { return KindClass }

// Contains reports whether r is an element of the class set.
// It ignores Negated; most callers want Matches.
func (c *Class) Contains(r rune) bool {
	if r >= 0 && r < 128 {
		return c.ascii[r>>6]&(1<<(uint(r)&63)) != 0
	}
	_, ok := c.extra[r]
	return ok
}

// Matches reports whether the class accepts r, honoring Negated.
func (c *Class) Matches(r rune) bool {
	return c.Contains(r) != c.Negated
}

// Sequence matches its child nodes in order; all must succeed, consuming
// cumulatively.
type Sequence struct {
	Nodes []Node
}

// Kind returns KindSequence.
func (*Sequence) Kind() Kind { return KindSequence }

// Alternation tries its branches strictly in listed order and commits to the
// first branch that succeeds. It never reconsiders a committed branch, even
// if a later sibling of the alternation subsequently fails.
type Alternation struct {
	Branches []*Sequence
}

// Kind returns KindAlternation.
func (*Alternation) Kind() Kind { return KindAlternation }

// Group is a numbered capturing group wrapping an alternation. Group 0 is
// the implicit group around the whole pattern.
type Group struct {
	Num  int
	Body *Alternation
}

// Kind returns KindGroup.
func (*Group) Kind() Kind { return KindGroup }

// Repeat matches its wrapped node zero or more times, greedily.
//
// Once a repetition count is committed it is never reduced: if a later
// sibling in the enclosing sequence fails, the repeat does not retry with
// fewer iterations. This is a defining property of the engine, not an
// optimization.
//
// The wrapped node may be shared: the '+' desugaring appends a Repeat whose
// Node is the same pointer as the preceding mandatory occurrence.
type Repeat struct {
	Node Node
}

// Kind returns KindRepeat.
func (*Repeat) Kind() Kind { return KindRepeat }

// GroupCount returns the number of capturing groups in the tree rooted at n,
// including the implicit group 0 when n is a full parsed pattern.
//
// Group numbers are dense, so this is the highest group number plus one.
// Counting numbers rather than Group nodes keeps the result correct for
// trees where the '+' desugaring shares a Group between two references.
func GroupCount(n Node) int {
	max := -1
	walk(n, func(node Node) {
		if g, ok := node.(*Group); ok && g.Num > max {
			max = g.Num
		}
	})
	return max + 1
}

// walk visits every node of the tree in depth-first order. Nodes shared by
// the '+' desugaring are visited once per reference.
func walk(n Node, visit func(Node)) {
	visit(n)
	switch n := n.(type) {
	case *Sequence:
		for _, child := range n.Nodes {
			walk(child, visit)
		}
	case *Alternation:
		for _, br := range n.Branches {
			walk(br, visit)
		}
	case *Group:
		walk(n.Body, visit)
	case *Repeat:
		walk(n.Node, visit)
	}
}
