package literal

import (
	"github.com/coregx/retree/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// The limits keep extraction cheap on adversarial patterns:
//   - MaxLiterals stops alternation unions and sequence cross products from
//     exploding (e.g. [abc][abc][abc]... is 3^n literals).
//   - MaxLiteralLen truncates very long literals.
//   - MaxClassSize skips expanding large character classes.
type ExtractorConfig struct {
	// MaxLiterals is the maximum number of literals a sequence may hold.
	// Extraction that would exceed it is abandoned or marked incomplete.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen is the maximum length of one extracted literal.
	// Longer literals are truncated and marked incomplete. Default: 64.
	MaxLiteralLen int

	// MaxClassSize is the largest character class to expand into its
	// members. Negated classes are never expanded. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal sequences from a parsed pattern tree.
//
// Three extractions are offered:
//   - ExtractPrefixes: every match must start with one of the returned
//     literals, in pattern branch order.
//   - ExtractSuffix: every match must end with the returned bytes.
//   - ExtractInner: every match must contain the returned bytes.
//
// All three are necessary conditions on matches; the engine uses them to
// reject subjects without walking the tree.
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the ordered sequence of literal prefixes of the
// pattern, or nil when the pattern yields no usable prefix information
// (for example when it can start with a repeat or a negated class).
//
// Every possible match starts with one of the returned literals. A literal
// with Complete set covers an entire possible match on its own.
//
// Example:
//
//	root, _ := syntax.Parse("ab|cd")
//	seq := extractor.ExtractPrefixes(root)
//	// seq = [literal{ab, complete=true}, literal{cd, complete=true}]
func (e *Extractor) ExtractPrefixes(root *syntax.Group) *Seq {
	seq := e.prefixes(root)
	if seq == nil || seq.IsEmpty() {
		return nil
	}
	// An incomplete sequence holding an empty literal can reject nothing:
	// every subject trivially starts with "". (A fully complete sequence
	// may keep empty literals — they represent empty-capable branches.)
	if !seq.AllComplete() && seq.MinLen() == 0 {
		return nil
	}
	return seq
}

// prefixes returns the prefix sequence of one node, or nil when no prefix
// information can be derived.
func (e *Extractor) prefixes(n syntax.Node) *Seq {
	switch n := n.(type) {
	case *syntax.Char:
		return NewSeq(NewLiteral([]byte(string(n.R)), true))

	case *syntax.Class:
		if n.Negated || len(n.Elems) == 0 || len(n.Elems) > e.config.MaxClassSize {
			return nil
		}
		seq := NewSeq()
		for _, r := range n.Elems {
			seq.Push(NewLiteral([]byte(string(r)), true))
		}
		return seq

	case *syntax.Group:
		return e.prefixes(n.Body)

	case *syntax.Alternation:
		out := NewSeq()
		for _, br := range n.Branches {
			bs := e.prefixes(br)
			if bs == nil {
				// A branch with unknown prefixes poisons the whole
				// alternation: a match could come from that branch.
				return nil
			}
			for i := 0; i < bs.Len(); i++ {
				out.Push(bs.Get(i))
			}
			if out.Len() > e.config.MaxLiterals {
				return nil
			}
		}
		return out

	case *syntax.Sequence:
		cur := NewSeq(NewLiteral(nil, true))
		for _, child := range n.Nodes {
			if !e.anyComplete(cur) {
				break
			}
			cs := e.prefixes(child)
			if cs == nil {
				// The literals so far remain valid prefixes; they just no
				// longer cover an entire match.
				cur.MarkIncomplete()
				break
			}
			next, ok := e.cross(cur, cs)
			if !ok {
				cur.MarkIncomplete()
				break
			}
			cur = next
		}
		return cur

	case *syntax.Repeat:
		// Zero iterations are always allowed, so a repeat contributes no
		// mandatory prefix.
		return nil

	default:
		return nil
	}
}

// anyComplete reports whether any literal in the sequence can still be
// extended by further children.
func (e *Extractor) anyComplete(s *Seq) bool {
	for _, l := range s.Literals() {
		if l.Complete {
			return true
		}
	}
	return false
}

// cross extends every complete literal of cur with every literal of cs,
// preserving cur-major order. Incomplete literals pass through unchanged.
// It reports false when the product would exceed MaxLiterals.
func (e *Extractor) cross(cur, cs *Seq) (*Seq, bool) {
	out := NewSeq()
	for _, a := range cur.Literals() {
		if !a.Complete {
			out.Push(a)
			if out.Len() > e.config.MaxLiterals {
				return nil, false
			}
			continue
		}
		for _, b := range cs.Literals() {
			cat := make([]byte, 0, len(a.Bytes)+len(b.Bytes))
			cat = append(cat, a.Bytes...)
			cat = append(cat, b.Bytes...)
			complete := b.Complete
			if len(cat) > e.config.MaxLiteralLen {
				cat = cat[:e.config.MaxLiteralLen]
				complete = false
			}
			out.Push(NewLiteral(cat, complete))
			if out.Len() > e.config.MaxLiterals {
				return nil, false
			}
		}
	}
	return out, true
}

// ExtractSuffix returns bytes that every match must end with, or nil when
// no required suffix exists.
//
// The result is the longest common suffix of the per-branch suffix literals,
// so it is a single byte string even for alternations.
func (e *Extractor) ExtractSuffix(root *syntax.Group) []byte {
	seq := e.suffixes(root)
	if seq == nil || seq.IsEmpty() {
		return nil
	}
	suffix := seq.LongestCommonSuffix()
	if len(suffix) == 0 {
		return nil
	}
	return suffix
}

// suffixes mirrors prefixes, walking sequences right to left and prepending
// on cross products.
func (e *Extractor) suffixes(n syntax.Node) *Seq {
	switch n := n.(type) {
	case *syntax.Char:
		return NewSeq(NewLiteral([]byte(string(n.R)), true))

	case *syntax.Class:
		if n.Negated || len(n.Elems) == 0 || len(n.Elems) > e.config.MaxClassSize {
			return nil
		}
		seq := NewSeq()
		for _, r := range n.Elems {
			seq.Push(NewLiteral([]byte(string(r)), true))
		}
		return seq

	case *syntax.Group:
		return e.suffixes(n.Body)

	case *syntax.Alternation:
		out := NewSeq()
		for _, br := range n.Branches {
			bs := e.suffixes(br)
			if bs == nil {
				return nil
			}
			for i := 0; i < bs.Len(); i++ {
				out.Push(bs.Get(i))
			}
			if out.Len() > e.config.MaxLiterals {
				return nil
			}
		}
		return out

	case *syntax.Sequence:
		cur := NewSeq(NewLiteral(nil, true))
		for i := len(n.Nodes) - 1; i >= 0; i-- {
			if !e.anyComplete(cur) {
				break
			}
			cs := e.suffixes(n.Nodes[i])
			if cs == nil {
				cur.MarkIncomplete()
				break
			}
			next, ok := e.crossBefore(cur, cs)
			if !ok {
				cur.MarkIncomplete()
				break
			}
			cur = next
		}
		return cur

	case *syntax.Repeat:
		return nil

	default:
		return nil
	}
}

// crossBefore is cross with the child literals prepended instead of
// appended; truncation keeps the trailing bytes.
func (e *Extractor) crossBefore(cur, cs *Seq) (*Seq, bool) {
	out := NewSeq()
	for _, a := range cur.Literals() {
		if !a.Complete {
			out.Push(a)
			if out.Len() > e.config.MaxLiterals {
				return nil, false
			}
			continue
		}
		for _, b := range cs.Literals() {
			cat := make([]byte, 0, len(a.Bytes)+len(b.Bytes))
			cat = append(cat, b.Bytes...)
			cat = append(cat, a.Bytes...)
			complete := b.Complete
			if len(cat) > e.config.MaxLiteralLen {
				cat = cat[len(cat)-e.config.MaxLiteralLen:]
				complete = false
			}
			out.Push(NewLiteral(cat, complete))
			if out.Len() > e.config.MaxLiterals {
				return nil, false
			}
		}
	}
	return out, true
}

// ExtractInner returns the longest literal run that must appear in every
// match, or nil when none is known.
//
// The walk stays on the mandatory spine of the pattern: single-branch
// alternations, groups, and runs of literal characters inside sequences.
// Repeats and multi-branch alternations contribute nothing.
func (e *Extractor) ExtractInner(root *syntax.Group) []byte {
	inner := e.inner(root)
	if len(inner) == 0 {
		return nil
	}
	if len(inner) > e.config.MaxLiteralLen {
		inner = inner[:e.config.MaxLiteralLen]
	}
	return inner
}

func (e *Extractor) inner(n syntax.Node) []byte {
	switch n := n.(type) {
	case *syntax.Char:
		return []byte(string(n.R))

	case *syntax.Class:
		if !n.Negated && len(n.Elems) == 1 {
			return []byte(string(n.Elems[0]))
		}
		return nil

	case *syntax.Group:
		return e.inner(n.Body)

	case *syntax.Alternation:
		if len(n.Branches) == 1 {
			return e.inner(n.Branches[0])
		}
		return nil

	case *syntax.Sequence:
		var best, run []byte
		take := func(candidate []byte) {
			if len(candidate) > len(best) {
				best = candidate
			}
		}
		for _, child := range n.Nodes {
			if lit := e.literalRunByte(child); lit != 0 {
				run = append(run, lit)
				continue
			}
			take(run)
			run = nil
			take(e.inner(child))
		}
		take(run)
		return best

	default:
		return nil
	}
}

// literalRunByte returns the single mandatory byte a node contributes to a
// literal run, or 0 when the node is not a single-byte literal.
func (e *Extractor) literalRunByte(n syntax.Node) byte {
	switch n := n.(type) {
	case *syntax.Char:
		if n.R > 0 && n.R < 128 {
			return byte(n.R)
		}
	case *syntax.Class:
		if !n.Negated && len(n.Elems) == 1 {
			r := n.Elems[0]
			if r > 0 && r < 128 {
				return byte(r)
			}
		}
	}
	return 0
}
