package literal

import (
	"bytes"
	"testing"
)

func TestLiteral(t *testing.T) {
	lit := NewLiteral([]byte("hello"), true)
	if lit.Len() != 5 {
		t.Errorf("Len() = %d, want 5", lit.Len())
	}
	if got := lit.String(); got != "literal{hello, complete=true}" {
		t.Errorf("String() = %q", got)
	}
}

func TestSeqOrderPreserved(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("zz"), true),
		NewLiteral([]byte("aa"), true),
		NewLiteral([]byte("mm"), true),
	)

	want := []string{"zz", "aa", "mm"}
	for i, w := range want {
		if got := string(seq.Get(i).Bytes); got != w {
			t.Errorf("Get(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestSeqAllComplete(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("a"), true),
		NewLiteral([]byte("b"), true),
	)
	if !seq.AllComplete() {
		t.Error("AllComplete() = false for all-complete seq")
	}

	seq.Push(NewLiteral([]byte("c"), false))
	if seq.AllComplete() {
		t.Error("AllComplete() = true with an incomplete literal")
	}

	if NewSeq().AllComplete() {
		t.Error("AllComplete() = true for empty seq")
	}
}

func TestSeqMarkIncomplete(t *testing.T) {
	seq := NewSeq(NewLiteral([]byte("a"), true), NewLiteral([]byte("b"), true))
	seq.MarkIncomplete()
	for _, l := range seq.Literals() {
		if l.Complete {
			t.Errorf("literal %q still complete after MarkIncomplete", l.Bytes)
		}
	}
}

func TestSeqDedup(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("foo"), true),
		NewLiteral([]byte("bar"), true),
		NewLiteral([]byte("foo"), false),
		NewLiteral([]byte("bar"), true),
	)
	seq.Dedup()

	if seq.Len() != 2 {
		t.Fatalf("Len() = %d after Dedup, want 2", seq.Len())
	}
	if string(seq.Get(0).Bytes) != "foo" || string(seq.Get(1).Bytes) != "bar" {
		t.Errorf("Dedup changed order: %v", seq)
	}
	if !seq.Get(0).Complete {
		t.Error("Dedup dropped the first occurrence instead of the duplicate")
	}
}

func TestSeqCommonPrefixSuffix(t *testing.T) {
	tests := []struct {
		name       string
		lits       []string
		wantPrefix string
		wantSuffix string
	}{
		{"shared prefix", []string{"hello", "help", "hero"}, "he", ""},
		{"shared suffix", []string{"cat", "bat", "rat"}, "", "at"},
		{"identical", []string{"abc", "abc"}, "abc", "abc"},
		{"disjoint", []string{"abc", "xyz"}, "", ""},
		{"single", []string{"abc"}, "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewSeq()
			for _, s := range tt.lits {
				seq.Push(NewLiteral([]byte(s), true))
			}
			if got := seq.LongestCommonPrefix(); !bytes.Equal(got, []byte(tt.wantPrefix)) {
				t.Errorf("LongestCommonPrefix() = %q, want %q", got, tt.wantPrefix)
			}
			if got := seq.LongestCommonSuffix(); !bytes.Equal(got, []byte(tt.wantSuffix)) {
				t.Errorf("LongestCommonSuffix() = %q, want %q", got, tt.wantSuffix)
			}
		})
	}

	if got := NewSeq().LongestCommonPrefix(); got != nil {
		t.Errorf("empty seq LCP = %q, want nil", got)
	}
}

func TestSeqMinLen(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("abcd"), true),
		NewLiteral([]byte("ab"), true),
		NewLiteral([]byte("abc"), true),
	)
	if got := seq.MinLen(); got != 2 {
		t.Errorf("MinLen() = %d, want 2", got)
	}
	if got := NewSeq().MinLen(); got != 0 {
		t.Errorf("empty seq MinLen() = %d, want 0", got)
	}
}
