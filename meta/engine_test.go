package meta

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/retree/syntax"
	"github.com/coregx/retree/walker"
)

// TestCompileErrors ensures parse failures surface as *syntax.ParseError.
func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{")", syntax.ErrUnmatchedParen},
		{"*", syntax.ErrMissingRepeatArgument},
		{"[]", syntax.ErrEmptyClass},
		{`\q`, syntax.ErrInvalidEscape},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			engine, err := Compile(tt.pattern)
			if engine != nil {
				t.Error("Compile returned an engine alongside an error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

// TestStrategySelection checks which execution strategy compilation picks.
func TestStrategySelection(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Strategy
	}{
		{"plain literal", "abc", UseLiteralSet},
		{"literal alternation", "foo|bar|baz", UseLiteralSet},
		{"class alternation", "[ab]c|de", UseLiteralSet},
		{"empty pattern", "", UseLiteralSet},
		{"empty branch", "a|", UseLiteralSet},
		{"group disables literal set", "(a)bc", UseWalkerPrefilter},
		{"repeat tail keeps prefix", "ab*", UseWalkerPrefilter},
		{"suffix only", "a*bc", UseWalkerPrefilter},
		{"bare repeat", "a*", UseWalker},
		{"negated class", "[^z]", UseWalker},
		{"leading repeat alternation", "a*|b*", UseWalker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := engine.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStrategyDisabled checks the config switches.
func TestStrategyDisabled(t *testing.T) {
	config := DefaultConfig()
	config.EnableLiteralFastPath = false
	engine, err := CompileWithConfig("abc", config)
	if err != nil {
		t.Fatal(err)
	}
	if engine.Strategy() == UseLiteralSet {
		t.Error("literal fast path selected despite being disabled")
	}

	config = DefaultConfig()
	config.EnablePrefilter = false
	config.EnableLiteralFastPath = false
	engine, err = CompileWithConfig("abc", config)
	if err != nil {
		t.Fatal(err)
	}
	if engine.Strategy() != UseWalker {
		t.Errorf("Strategy() = %v, want UseWalker with everything disabled", engine.Strategy())
	}
}

// TestStrategiesAgree runs the same subjects through every strategy; the
// fast paths must reproduce the walker's results exactly, including the
// first-branch commit.
func TestStrategiesAgree(t *testing.T) {
	patterns := []string{
		"abc",
		"a|ab|abc",
		"a|ab",
		"[ab][cd]",
		"a|",
		"",
		"(a)bc",
		"(foo|bar)baz",
		"a*bc",
		"(a+)b",
	}
	subjects := []string{
		"", "a", "ab", "abc", "abcd", "b", "ac", "bd",
		"foobaz", "barbaz", "bazfoo", "aabc", "abc ", " abc", "aaab",
	}

	walkerOnly := DefaultConfig()
	walkerOnly.EnableLiteralFastPath = false
	walkerOnly.EnablePrefilter = false

	for _, pattern := range patterns {
		fast, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pattern, err)
		}
		slow, err := CompileWithConfig(pattern, walkerOnly)
		if err != nil {
			t.Fatalf("CompileWithConfig(%q) error = %v", pattern, err)
		}

		for _, subject := range subjects {
			gotCaps, gotOK := fast.Match(subject)
			wantCaps, wantOK := slow.Match(subject)
			if gotOK != wantOK || !reflect.DeepEqual(gotCaps, wantCaps) {
				t.Errorf("pattern %q subject %q: %v strategy = (%v, %v), walker = (%v, %v)",
					pattern, subject, fast.Strategy(), gotCaps, gotOK, wantCaps, wantOK)
			}
		}
	}
}

// TestLiteralSetFirstCommit pins the alternation-commit semantics on the
// literal fast path: a|ab against "ab" commits to the first branch and
// fails, exactly as the walker would.
func TestLiteralSetFirstCommit(t *testing.T) {
	engine, err := Compile("a|ab")
	if err != nil {
		t.Fatal(err)
	}
	if engine.Strategy() != UseLiteralSet {
		t.Fatalf("Strategy() = %v, want UseLiteralSet", engine.Strategy())
	}

	if _, ok := engine.Match("ab"); ok {
		t.Error("Match(ab) succeeded; the first branch should have committed and failed")
	}
	caps, ok := engine.Match("a")
	if !ok {
		t.Fatal("Match(a) failed")
	}
	if !reflect.DeepEqual(caps, walker.Captures{0: "a"}) {
		t.Errorf("captures = %v", caps)
	}
}

// TestLengthBounds checks the computed bounds and the O(1) rejection.
func TestLengthBounds(t *testing.T) {
	tests := []struct {
		pattern string
		wantMin int
		wantMax int
	}{
		{"", 0, 0},
		{"abc", 3, 3},
		{"ab|a", 1, 2},
		{"a*", 0, -1},
		{"a+", 1, -1},
		{"(ab|cde)f", 3, 4},
		{"[abc][xyz]", 2, 2},
		{"(a|bc)*", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			engine, err := Compile(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			min, max := engine.LengthBounds()
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("LengthBounds() = (%d, %d), want (%d, %d)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}

	t.Run("rune counting", func(t *testing.T) {
		engine, err := Compile("éé")
		if err != nil {
			t.Fatal(err)
		}
		// 2 runes, 4 bytes: the bounds are in characters, not bytes.
		if _, ok := engine.Match("éé"); !ok {
			t.Error("Match(éé) failed")
		}
	})
}

// TestStats checks counter attribution per strategy path.
func TestStats(t *testing.T) {
	t.Run("length reject", func(t *testing.T) {
		engine, err := Compile("abc")
		if err != nil {
			t.Fatal(err)
		}
		engine.Match("toolongsubject")
		stats := engine.Stats()
		if stats.LengthRejects != 1 {
			t.Errorf("LengthRejects = %d, want 1", stats.LengthRejects)
		}
		if stats.WalkerRuns != 0 || stats.LiteralSetRuns != 0 {
			t.Errorf("unexpected runs: %+v", stats)
		}
	})

	t.Run("prefilter reject", func(t *testing.T) {
		engine, err := Compile("(x)y*")
		if err != nil {
			t.Fatal(err)
		}
		if engine.Strategy() != UseWalkerPrefilter {
			t.Fatalf("Strategy() = %v", engine.Strategy())
		}
		engine.Match("zzz")
		if stats := engine.Stats(); stats.PrefilterRejects != 1 || stats.WalkerRuns != 0 {
			t.Errorf("stats = %+v", stats)
		}
	})

	t.Run("walker run and reset", func(t *testing.T) {
		engine, err := Compile("[^z]*")
		if err != nil {
			t.Fatal(err)
		}
		engine.Match("abc")
		engine.Match("xyz")
		stats := engine.Stats()
		if stats.WalkerRuns != 2 || stats.Matches != 1 || stats.Misses != 1 {
			t.Errorf("stats = %+v", stats)
		}

		engine.ResetStats()
		if stats := engine.Stats(); stats != (Stats{}) {
			t.Errorf("stats after reset = %+v", stats)
		}
	})
}

// TestGroupCountAndRoot covers the tree accessors.
func TestGroupCountAndRoot(t *testing.T) {
	engine, err := Compile("(a(b|c))b((c|d)*)")
	if err != nil {
		t.Fatal(err)
	}
	if got := engine.GroupCount(); got != 5 {
		t.Errorf("GroupCount() = %d, want 5", got)
	}
	if engine.Root() == nil || engine.Root().Num != 0 {
		t.Error("Root() did not return the implicit outer group")
	}
}

// TestLargeAlternationPrefilter forces the Aho-Corasick prefix path and
// checks matching still agrees with the walker.
func TestLargeAlternationPrefilter(t *testing.T) {
	branches := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		branches = append(branches, fmt.Sprintf("word%02d", i))
	}
	// The trailing group blocks the literal-set strategy, leaving the
	// 12-literal prefix set to the prefilter.
	pattern := "(" + strings.Join(branches, "|") + ")(x*)"

	engine, err := Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if engine.Strategy() != UseWalkerPrefilter {
		t.Fatalf("Strategy() = %v, want UseWalkerPrefilter", engine.Strategy())
	}

	caps, ok := engine.Match("word07xx")
	if !ok {
		t.Fatal("Match(word07xx) failed")
	}
	want := walker.Captures{0: "word07xx", 1: "word07", 2: "xx"}
	if !reflect.DeepEqual(caps, want) {
		t.Errorf("captures = %v, want %v", caps, want)
	}

	if _, ok := engine.Match("nothing here"); ok {
		t.Error("Match succeeded on a subject containing no branch literal")
	}
	if stats := engine.Stats(); stats.PrefilterRejects == 0 {
		t.Errorf("prefilter never rejected: %+v", stats)
	}
}
