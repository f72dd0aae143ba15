// Package meta orchestrates pattern compilation and match execution.
//
// Compilation parses the pattern, analyzes the tree (group count, match
// length bounds), extracts literals, and selects an execution strategy:
//
//   - UseLiteralSet: the pattern is an alternation of plain literals, so
//     whole-subject matching reduces to an ordered prefix scan and the tree
//     walk is skipped entirely.
//   - UseWalkerPrefilter: extracted literals build a prefilter that rejects
//     hopeless subjects before the tree walk.
//   - UseWalker: the tree walk runs unconditionally.
//
// An Engine is immutable after compilation and safe for concurrent use;
// every match attempt owns its cursor and capture map, and statistics are
// updated atomically.
package meta

import (
	"fmt"

	"github.com/coregx/retree/syntax"
)

// Config controls compilation limits and strategy selection.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always walk the tree
//	engine, err := meta.CompileWithConfig("(a|b)c*", config)
type Config struct {
	// EnablePrefilter enables literal-based subject rejection before the
	// tree walk. Default: true.
	EnablePrefilter bool

	// EnableLiteralFastPath enables the literal-set strategy for patterns
	// that are pure literal alternations. Default: true.
	EnableLiteralFastPath bool

	// MaxLiterals limits how many literals extraction may produce from
	// alternations and class expansions. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of a single extracted literal.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize is the largest character class expanded during literal
	// extraction. Default: 10.
	MaxClassSize int

	// MaxNestingDepth bounds group nesting in the parser, which in turn
	// bounds parser and walker recursion. Default: syntax.DefaultMaxNesting.
	MaxNestingDepth int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:       true,
		EnableLiteralFastPath: true,
		MaxLiterals:           64,
		MaxLiteralLen:         64,
		MaxClassSize:          10,
		MaxNestingDepth:       syntax.DefaultMaxNesting,
	}
}

// Validate checks that every configuration parameter is in range.
//
// Valid ranges:
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 256
//   - MaxClassSize: 1 to 64
//   - MaxNestingDepth: 1 to 10,000
func (c Config) Validate() error {
	if c.MaxLiterals < 1 || c.MaxLiterals > 1000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: fmt.Sprintf("must be between 1 and 1000, got %d", c.MaxLiterals),
		}
	}
	if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 256 {
		return &ConfigError{
			Field:   "MaxLiteralLen",
			Message: fmt.Sprintf("must be between 1 and 256, got %d", c.MaxLiteralLen),
		}
	}
	if c.MaxClassSize < 1 || c.MaxClassSize > 64 {
		return &ConfigError{
			Field:   "MaxClassSize",
			Message: fmt.Sprintf("must be between 1 and 64, got %d", c.MaxClassSize),
		}
	}
	if c.MaxNestingDepth < 1 || c.MaxNestingDepth > 10000 {
		return &ConfigError{
			Field:   "MaxNestingDepth",
			Message: fmt.Sprintf("must be between 1 and 10000, got %d", c.MaxNestingDepth),
		}
	}
	return nil
}

// ConfigError reports an out-of-range configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Message)
}
