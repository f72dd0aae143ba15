// Package retree implements a small tree-walking regular-expression engine
// with capture groups.
//
// A pattern compiles into an immutable tree (group > alternation > sequence
// > atom) and matches whole subject strings only: a match must consume the
// entire subject, and the result is a map from capture-group number to the
// substring each group matched. Group numbers follow opening parentheses,
// depth-first, left-to-right; group 0 is the whole pattern.
//
// Supported syntax:
//
//	abc        literal characters
//	(...)      capturing group
//	a|b        alternation, first matching branch wins
//	a*         zero or more, greedy
//	a+         one or more (desugared to a followed by a*)
//	[abc]      character class
//	[^abc]     negated character class
//	\s \S      whitespace class {space, tab} and its negation
//	\( \t ...  literal escapes
//
// Two deliberate limitations define the matching semantics:
//
//   - An alternation commits to the first branch that succeeds and never
//     reconsiders, even if the committed branch makes a later part of the
//     pattern fail.
//   - A repeat is greedy and never gives back iterations. (a*)a therefore
//     matches nothing at all: the star consumes every 'a' and the trailing
//     literal always fails.
//
// There are no anchors (matches are implicitly anchored at both ends), no
// lazy quantifiers, no bounded repetition, and no lookaround.
//
// Basic usage:
//
//	re, err := retree.Compile("(a(b|c))b((c|d)*)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	caps, ok := re.Match("acbcdcdd")
//	if ok {
//	    fmt.Println(caps[1]) // "ac"
//	}
//
// A compiled Regex is immutable and safe for concurrent use.
package retree

import (
	"github.com/coregx/retree/meta"
	"github.com/coregx/retree/syntax"
	"github.com/coregx/retree/walker"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Captures maps a capture group number to the substring that group last
// matched. Group 0 is always present in a successful match and equals the
// entire subject.
type Captures = walker.Captures

// Compile compiles a pattern.
//
// Compilation fails on any grammar violation: an unmatched ')', a '*' or
// '+' with no preceding atom, an empty or unterminated character class, or
// an invalid or dangling escape. The error is a *syntax.ParseError carrying
// the position and the violated rule; no partially-compiled Regex is ever
// returned.
//
// Example:
//
//	re, err := retree.Compile(`(a+)b`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is for patterns known to be valid at program start:
//
//	var wordRe = retree.MustCompile(`[abc]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("retree: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom limits and strategy
// switches.
//
// Example:
//
//	config := retree.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := retree.CompileWithConfig("(a|b)c", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default compilation configuration, for
// customizing and passing to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match attempts to match the whole subject.
//
// On success it returns the capture map: group 0 is the entire subject, and
// each further entry holds the substring its group last matched. Groups in
// unselected alternation branches, or in zero iterations of a repeat, are
// absent. A group inside a repeat keeps only its last iteration's value.
//
// "No match" is an ordinary negative result, never an error, and includes
// the case where the pattern matches only a prefix of the subject.
//
// Example:
//
//	re := retree.MustCompile("(a*)bc")
//	caps, ok := re.Match("aabc")
//	// ok == true, caps == Captures{0: "aabc", 1: "aa"}
func (re *Regex) Match(subject string) (Captures, bool) {
	return re.engine.Match(subject)
}

// IsMatch reports whether the whole subject matches.
func (re *Regex) IsMatch(subject string) bool {
	return re.engine.IsMatch(subject)
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// Dump returns a canonical rendering of the compiled tree, approximating
// the pattern syntax. It is a diagnostic aid, not a round-trip: '+' shows
// up desugared as the atom followed by the same atom starred.
//
// Example:
//
//	re := retree.MustCompile("a(b|c)*")
//	fmt.Println(re.Dump())
//	// Char{a}Grp{(Char{b}|Char{c})}*
func (re *Regex) Dump() string {
	return syntax.Render(re.engine.Root())
}

// GroupCount returns the number of capture groups, including group 0.
func (re *Regex) GroupCount() int {
	return re.engine.GroupCount()
}

// Strategy returns the execution strategy selected at compile time.
func (re *Regex) Strategy() meta.Strategy {
	return re.engine.Strategy()
}

// Stats returns a snapshot of the engine's match counters.
func (re *Regex) Stats() meta.Stats {
	return re.engine.Stats()
}

// ResetStats zeroes the engine's match counters.
func (re *Regex) ResetStats() {
	re.engine.ResetStats()
}
