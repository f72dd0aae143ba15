// Package input provides the forward-only character cursor consumed by the
// match walker.
//
// A Cursor is a small value type: cloning one captures a savepoint, and
// restoring from a savepoint is the only way to move backwards. The walker
// implements all of its backtracking through this clone/restore pair.
package input

import "unicode/utf8"

// Cursor is a forward-only position marker over a subject string.
//
// The zero Cursor is a cursor over the empty string. Cursors over the same
// subject share it; Clone copies only the position.
type Cursor struct {
	subject string
	off     int
}

// NewCursor returns a cursor positioned at the start of subject.
func NewCursor(subject string) Cursor {
	return Cursor{subject: subject}
}

// Next advances past one character and returns it.
// The second result is false when the input is exhausted.
func (c *Cursor) Next() (rune, bool) {
	if c.off >= len(c.subject) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.subject[c.off:])
	c.off += size
	return r, true
}

// Clone returns an independent savepoint at the current position.
func (c *Cursor) Clone() Cursor {
	return *c
}

// RestoreFrom resets the cursor to a previously cloned savepoint.
// The savepoint must have been cloned from a cursor over the same subject.
func (c *Cursor) RestoreFrom(save Cursor) {
	*c = save
}

// Offset returns the byte offset of the next unread character.
func (c *Cursor) Offset() int {
	return c.off
}

// Since returns the substring consumed between the savepoint and the
// current position. The result aliases the subject; no copy is made.
func (c *Cursor) Since(save Cursor) string {
	return c.subject[save.off:c.off]
}

// Remaining returns the number of unread characters.
func (c *Cursor) Remaining() int {
	return utf8.RuneCountInString(c.subject[c.off:])
}

// Exhausted reports whether the cursor has consumed the whole subject.
func (c *Cursor) Exhausted() bool {
	return c.off >= len(c.subject)
}
