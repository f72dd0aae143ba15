package syntax

import (
	"errors"
	"strings"
	"testing"
)

// TestParseRender checks parsed tree structure through its rendering.
func TestParseRender(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"empty", "", ""},
		{"single char", "a", "Char{a}"},
		{"literal sequence", "abc", "Char{a}Char{b}Char{c}"},
		{"alternation", "a|b", "Char{a}|Char{b}"},
		{"empty branch", "a|", "Char{a}|"},
		{"group", "(a)", "Grp{(Char{a})}"},
		{"nested group", "(a(b))", "Grp{(Char{a}Grp{(Char{b})})}"},
		{"star", "ab*", "Char{a}Char{b}*"},
		{"star on group", "(ab)*", "Grp{(Char{a}Char{b})}*"},
		{"plus desugars", "a+", "Char{a}Char{a}*"},
		{"plus on group", "(ab)+", "Grp{(Char{a}Char{b})}Grp{(Char{a}Char{b})}*"},
		{"double star", "a**", "Char{a}**"},
		{"class", "[abc]", "[abc]"},
		{"negated class", "[^z]", "[^z]"},
		{"class with escapes", `[a\]\\]`, `[a\]\\]`},
		{"whitespace escape", `\s`, `[ \t]`},
		{"negated whitespace escape", `\S`, `[^ \t]`},
		{"literal escapes", `\(\)\[\]\*\+\^\\\t`, `Char{(}Char{)}Char{[}Char{]}Char{*}Char{+}Char{^}Char{\}Char{	}`},
		{"mixed", "(a*)bc", "Grp{(Char{a}*)}Char{b}Char{c}"},
		{"groups and alts", "(a(b|c))b((c|d)*)",
			"Grp{(Char{a}Grp{(Char{b}|Char{c})})}Char{b}Grp{(Grp{(Char{c}|Char{d})}*)}"},
		{"unterminated group implicitly closed", "(ab", "Grp{(Char{a}Char{b})}"},
		{"unterminated nested groups", "((a", "Grp{(Grp{(Char{a})})}"},
		{"unicode literal", "é", "Char{é}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
			}
			if got := Render(root); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseErrors checks the fatal-error catalog: each malformed pattern
// must fail with the specific violated rule and no tree.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
		wantPos int
	}{
		{"unmatched close", ")", ErrUnmatchedParen, 0},
		{"unmatched close after atom", "ab)", ErrUnmatchedParen, 2},
		{"leading star", "*", ErrMissingRepeatArgument, 0},
		{"star after open branch", "a|*", ErrMissingRepeatArgument, 2},
		{"star in fresh group", "(*)", ErrMissingRepeatArgument, 1},
		{"leading plus", "+a", ErrMissingRepeatArgument, 0},
		{"empty class", "[]", ErrEmptyClass, 0},
		{"negated empty class", "[^]", ErrEmptyClass, 0},
		{"unterminated class", "[abc", ErrUnterminatedClass, 0},
		{"unterminated class after caret", "[^", ErrUnterminatedClass, 0},
		{"invalid escape", `\d`, ErrInvalidEscape, 0},
		{"invalid escape in class", `[\d]`, ErrInvalidEscape, 1},
		{"dangling escape", `ab\`, ErrTrailingBackslash, 2},
		{"dangling escape in class", `[a\`, ErrTrailingBackslash, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.pattern, Render(root))
			}
			if root != nil {
				t.Error("Parse returned a tree alongside an error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", pe.Pos, tt.wantPos)
			}
			if pe.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", pe.Pattern, tt.pattern)
			}
		})
	}
}

// TestGroupNumbering checks depth-first, left-to-right numbering in order
// of opening parenthesis.
func TestGroupNumbering(t *testing.T) {
	root, err := Parse("(a(b|c))b((c|d)*)")
	if err != nil {
		t.Fatal(err)
	}

	if root.Num != 0 {
		t.Errorf("root group number = %d, want 0", root.Num)
	}

	var nums []int
	walk(root, func(n Node) {
		if g, ok := n.(*Group); ok {
			nums = append(nums, g.Num)
		}
	})
	want := []int{0, 1, 2, 3, 4}
	if len(nums) != len(want) {
		t.Fatalf("group numbers = %v, want %v", nums, want)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Fatalf("group numbers = %v, want %v", nums, want)
		}
	}
}

// TestPlusSharesNode checks that '+' shares the preceding atom with the
// appended repeat instead of deep-copying it.
func TestPlusSharesNode(t *testing.T) {
	root, err := Parse("(ab)+")
	if err != nil {
		t.Fatal(err)
	}

	seq := root.Body.Branches[0]
	if len(seq.Nodes) != 2 {
		t.Fatalf("branch has %d nodes, want 2", len(seq.Nodes))
	}
	rpt, ok := seq.Nodes[1].(*Repeat)
	if !ok {
		t.Fatalf("second node is %T, want *Repeat", seq.Nodes[1])
	}
	if rpt.Node != seq.Nodes[0] {
		t.Error("repeat does not share the preceding node")
	}
	if GroupCount(root) != 2 {
		t.Errorf("GroupCount = %d, want 2 despite the shared group", GroupCount(root))
	}
}

// TestParseNestingLimit checks the recursion guard.
func TestParseNestingLimit(t *testing.T) {
	deep := strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50)

	if _, err := ParseWithLimit(deep, 10); !errors.Is(err, ErrNestedTooDeep) {
		t.Errorf("limit 10: error = %v, want ErrNestedTooDeep", err)
	}
	if _, err := ParseWithLimit(deep, 50); err != nil {
		t.Errorf("limit 50: unexpected error %v", err)
	}
}
