package meta

import (
	"github.com/coregx/retree/literal"
	"github.com/coregx/retree/prefilter"
	"github.com/coregx/retree/syntax"
)

// Compile compiles a pattern string into an executable Engine.
//
// Steps:
//  1. Parse the pattern into its tree (fatal on any grammar violation)
//  2. Analyze the tree: group count, match length bounds
//  3. Extract literals (prefixes, required suffix, required inner literal)
//  4. Select a strategy and build its prefilter if one applies
//
// Parse failures come back as a *syntax.ParseError carrying the pattern,
// the byte position, and the violated-rule sentinel. No partially-built
// engine is ever returned.
//
// Example:
//
//	engine, err := meta.Compile("(a(b|c))b((c|d)*)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	caps, ok := engine.Match("acbcdcdd")
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	root, err := syntax.ParseWithLimit(pattern, config.MaxNestingDepth)
	if err != nil {
		return nil, err
	}

	return NewEngine(root, config), nil
}

// NewEngine builds an Engine for an already-parsed tree.
//
// The tree must not be mutated afterwards; the engine shares it across all
// match attempts.
func NewEngine(root *syntax.Group, config Config) *Engine {
	e := &Engine{
		root:       root,
		groupCount: syntax.GroupCount(root),
		config:     config,
	}
	e.minLen, e.maxLen = lengthBounds(root)

	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: config.MaxLiteralLen,
		MaxClassSize:  config.MaxClassSize,
	})
	prefixes := extractor.ExtractPrefixes(root)

	// Literal-set strategy: the pattern is a plain literal alternation and
	// captures nothing beyond group 0, so matching is an ordered prefix
	// scan. AllComplete guarantees extraction covered every branch in full.
	if config.EnableLiteralFastPath &&
		e.groupCount == 1 &&
		prefixes != nil && prefixes.AllComplete() &&
		isLiteralAlternation(root, config.MaxClassSize) {
		e.strategy = UseLiteralSet
		e.literals = prefixes
		return e
	}

	if config.EnablePrefilter {
		inner := extractor.ExtractInner(root)
		suffix := extractor.ExtractSuffix(root)
		if pf := prefilter.NewBuilder(prefixes, inner, suffix).Build(); pf != nil {
			e.strategy = UseWalkerPrefilter
			e.prefilter = pf
			return e
		}
	}

	e.strategy = UseWalker
	return e
}
