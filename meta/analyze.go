package meta

import (
	"github.com/coregx/retree/syntax"
)

// lengthBounds computes the minimum and maximum number of characters any
// match of n can consume. max is -1 when unbounded (the tree contains a
// repeat that can consume input).
//
// The bounds are used for O(1) subject rejection: a subject whose character
// count falls outside [min, max] cannot match, whatever its content.
func lengthBounds(n syntax.Node) (min, max int) {
	switch n := n.(type) {
	case *syntax.Char:
		return 1, 1

	case *syntax.Class:
		return 1, 1

	case *syntax.Sequence:
		for _, child := range n.Nodes {
			cmin, cmax := lengthBounds(child)
			min += cmin
			if max >= 0 {
				if cmax < 0 {
					max = -1
				} else {
					max += cmax
				}
			}
		}
		return min, max

	case *syntax.Alternation:
		min, max = lengthBounds(n.Branches[0])
		for _, br := range n.Branches[1:] {
			bmin, bmax := lengthBounds(br)
			if bmin < min {
				min = bmin
			}
			if max >= 0 && (bmax < 0 || bmax > max) {
				max = bmax
			}
		}
		return min, max

	case *syntax.Group:
		return lengthBounds(n.Body)

	case *syntax.Repeat:
		_, cmax := lengthBounds(n.Node)
		if cmax == 0 {
			// The body cannot consume anything, so neither can the repeat.
			return 0, 0
		}
		return 0, -1

	default:
		return 0, -1
	}
}

// isLiteralAlternation reports whether the pattern is a plain alternation of
// literal branches: every branch of the root group is a sequence of literal
// characters and small non-negated classes, with no nested groups and no
// repeats.
//
// For such patterns (and only such patterns) the ordered literal set
// extracted from the tree reproduces the walker's semantics exactly,
// including the first-branch commit, so the walk can be skipped.
func isLiteralAlternation(root *syntax.Group, maxClassSize int) bool {
	for _, br := range root.Body.Branches {
		for _, n := range br.Nodes {
			switch n := n.(type) {
			case *syntax.Char:
			case *syntax.Class:
				if n.Negated || len(n.Elems) == 0 || len(n.Elems) > maxClassSize {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
