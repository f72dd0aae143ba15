package syntax

import (
	"unicode/utf8"
)

// DefaultMaxNesting is the group nesting depth limit used by Parse.
// Nesting depth bounds parser and matcher recursion, so the limit exists to
// turn hostile patterns like "((((((..." into an error instead of a stack
// overflow.
const DefaultMaxNesting = 100

// Parse parses a pattern into its tree, rooted at the implicit group 0.
//
// Parse fails on any grammar violation (see the Err* variables); the error
// is always a *ParseError and no partial tree is ever returned.
//
// Example:
//
//	root, err := syntax.Parse("(a(b|c))b((c|d)*)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(syntax.GroupCount(root)) // 5
func Parse(pattern string) (*Group, error) {
	return ParseWithLimit(pattern, DefaultMaxNesting)
}

// ParseWithLimit parses a pattern with a custom group nesting depth limit.
func ParseWithLimit(pattern string, maxNesting int) (*Group, error) {
	p := &parser{
		pattern:    pattern,
		maxNesting: maxNesting,
	}
	return p.group(0, 0)
}

// parser holds the single left-to-right scan state. The group counter is
// shared across the whole parse so numbers are assigned in order of opening
// parenthesis, depth-first, left-to-right.
type parser struct {
	pattern    string
	pos        int // byte offset of the next unread character
	groups     int // number of '(' consumed so far
	maxNesting int
}

// next consumes and returns one character of the pattern.
func (p *parser) next() (rune, bool) {
	if p.pos >= len(p.pattern) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(p.pattern[p.pos:])
	p.pos += size
	return r, true
}

// errAt wraps a sentinel error with the pattern and position context.
func (p *parser) errAt(err error, pos int) error {
	return &ParseError{
		Pattern: p.pattern,
		Pos:     pos,
		Err:     err,
	}
}

// group parses one group body: an alternation of sequences, terminated by
// ')' or by the end of the pattern.
//
// End of input closes every open group: a nested group whose ')' never
// arrives is accepted as implicitly closed rather than rejected.
func (p *parser) group(num, depth int) (*Group, error) {
	if depth > p.maxNesting {
		return nil, p.errAt(ErrNestedTooDeep, p.pos)
	}

	g := &Group{
		Num: num,
		Body: &Alternation{
			Branches: []*Sequence{{}},
		},
	}

	for {
		start := p.pos
		r, ok := p.next()
		if !ok {
			return g, nil
		}

		switch r {
		case '(':
			p.groups++
			sub, err := p.group(p.groups, depth+1)
			if err != nil {
				return nil, err
			}
			p.push(g, sub)

		case ')':
			if depth == 0 {
				return nil, p.errAt(ErrUnmatchedParen, start)
			}
			return g, nil

		case '|':
			g.Body.Branches = append(g.Body.Branches, &Sequence{})

		case '*':
			// Pop the last atom and re-append it wrapped in a Repeat.
			n, ok := p.pop(g)
			if !ok {
				return nil, p.errAt(ErrMissingRepeatArgument, start)
			}
			p.push(g, &Repeat{Node: n})

		case '+':
			// One mandatory occurrence followed by zero or more further
			// occurrences: the Repeat shares the preceding atom instead of
			// copying it.
			n, ok := p.last(g)
			if !ok {
				return nil, p.errAt(ErrMissingRepeatArgument, start)
			}
			p.push(g, &Repeat{Node: n})

		case '[':
			cls, err := p.class(start)
			if err != nil {
				return nil, err
			}
			p.push(g, cls)

		case '\\':
			n, err := p.escape(start)
			if err != nil {
				return nil, err
			}
			p.push(g, n)

		default:
			p.push(g, &Char{R: r})
		}
	}
}

// branch returns the alternation branch currently under construction.
func (p *parser) branch(g *Group) *Sequence {
	return g.Body.Branches[len(g.Body.Branches)-1]
}

// push appends a node to the current branch.
func (p *parser) push(g *Group, n Node) {
	seq := p.branch(g)
	seq.Nodes = append(seq.Nodes, n)
}

// pop removes and returns the most recently appended node of the current
// branch. It reports false when the branch is empty.
func (p *parser) pop(g *Group) (Node, bool) {
	seq := p.branch(g)
	if len(seq.Nodes) == 0 {
		return nil, false
	}
	n := seq.Nodes[len(seq.Nodes)-1]
	seq.Nodes = seq.Nodes[:len(seq.Nodes)-1]
	return n, true
}

// last returns the most recently appended node of the current branch
// without removing it.
func (p *parser) last(g *Group) (Node, bool) {
	seq := p.branch(g)
	if len(seq.Nodes) == 0 {
		return nil, false
	}
	return seq.Nodes[len(seq.Nodes)-1], true
}

// class parses a character class after its '[' has been consumed.
// startPos is the byte offset of that '['.
func (p *parser) class(startPos int) (*Class, error) {
	var elems []rune
	negated := false

	for i := 0; ; i++ {
		pos := p.pos
		r, ok := p.next()
		if !ok {
			return nil, p.errAt(ErrUnterminatedClass, startPos)
		}

		switch {
		case r == '^' && i == 0:
			negated = true

		case r == ']':
			if len(elems) == 0 {
				return nil, p.errAt(ErrEmptyClass, startPos)
			}
			return NewClass(elems, negated), nil

		case r == '\\':
			esc, ok := p.next()
			if !ok {
				return nil, p.errAt(ErrTrailingBackslash, pos)
			}
			lit, ok := literalEscape(esc)
			if !ok {
				return nil, p.errAt(ErrInvalidEscape, pos)
			}
			elems = append(elems, lit)

		default:
			elems = append(elems, r)
		}
	}
}

// escape parses an escape sequence after its '\' has been consumed, outside
// a character class. startPos is the byte offset of that '\'.
//
// '\s' and '\S' expand to the built-in whitespace class {space, tab} and its
// negation; everything else goes through the literal escape table.
func (p *parser) escape(startPos int) (Node, error) {
	r, ok := p.next()
	if !ok {
		return nil, p.errAt(ErrTrailingBackslash, startPos)
	}

	switch r {
	case 's':
		return NewClass([]rune{' ', '\t'}, false), nil
	case 'S':
		return NewClass([]rune{' ', '\t'}, true), nil
	}

	lit, ok := literalEscape(r)
	if !ok {
		return nil, p.errAt(ErrInvalidEscape, startPos)
	}
	return &Char{R: lit}, nil
}

// literalEscape maps an escaped character to the literal it stands for.
// The table is restricted on purpose: metacharacters map to themselves and
// 't' maps to a tab; anything else is an invalid escape.
func literalEscape(r rune) (rune, bool) {
	switch r {
	case '\\', '(', ')', '[', ']', '*', '+', '^':
		return r, true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}
