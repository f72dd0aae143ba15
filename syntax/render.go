package syntax

import (
	"strings"
)

// Render produces a canonical textual rendering of a (sub)tree,
// approximating the pattern syntax it was parsed from.
//
// Delimiters: numbered groups render as Grp{(...)}, group 0 renders its body
// without a wrapper, literal characters as Char{c}, classes as [...] or
// [^...], alternation branches joined by '|', repeats with a trailing '*'.
//
// Render is a diagnostic aid, not a round-trip of the original pattern: '+'
// is desugared during parsing and shows up as the atom followed by the same
// atom starred.
//
// Example:
//
//	root, _ := syntax.Parse("a(b|c)*")
//	fmt.Println(syntax.Render(root))
//	// Char{a}Grp{(Char{b}|Char{c})}*
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Char:
		b.WriteString("Char{")
		b.WriteRune(n.R)
		b.WriteByte('}')

	case *Class:
		b.WriteByte('[')
		if n.Negated {
			b.WriteByte('^')
		}
		for _, r := range n.Elems {
			writeClassRune(b, r)
		}
		b.WriteByte(']')

	case *Sequence:
		for _, child := range n.Nodes {
			render(b, child)
		}

	case *Alternation:
		for i, br := range n.Branches {
			if i > 0 {
				b.WriteByte('|')
			}
			render(b, br)
		}

	case *Group:
		if n.Num == 0 {
			render(b, n.Body)
			return
		}
		b.WriteString("Grp{(")
		render(b, n.Body)
		b.WriteString(")}")

	case *Repeat:
		render(b, n.Node)
		b.WriteByte('*')
	}
}

// writeClassRune writes one class member, escaping the characters that the
// class parser treats specially.
func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\t':
		b.WriteString(`\t`)
	case '\\', ']', '^':
		b.WriteByte('\\')
		b.WriteRune(r)
	default:
		b.WriteRune(r)
	}
}
