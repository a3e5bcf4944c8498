// Package doc holds the editor's document model: the text, the named style
// ranges layered over it, the selection and the insertion point.
package doc

import (
	"errors"
	"strings"
)

// ErrNoSelection is returned by commands that act on the selection when
// nothing is selected.
var ErrNoSelection = errors.New("doc: no selection")

// Document is the editor surface. All offsets are rune offsets.
type Document struct {
	text  []rune
	tags  [numTags]spanSet
	sel   Span
	caret int
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Text returns the full document text.
func (d *Document) Text() string { return string(d.text) }

// Len returns the length of the document in runes.
func (d *Document) Len() int { return len(d.text) }

// Slice returns the text covered by sp, clamped to the document.
func (d *Document) Slice(sp Span) string {
	sp = d.clamp(sp)
	return string(d.text[sp.Start:sp.End])
}

// Reset discards all text and tags.
func (d *Document) Reset() {
	d.text = nil
	d.tags = [numTags]spanSet{}
	d.sel = Span{}
	d.caret = 0
}

// Replace substitutes the runes in [start, end) with s and keeps every tag
// aligned with the characters it annotated.
func (d *Document) Replace(start, end int, s string) {
	sp := d.clamp(Span{start, end})
	ins := []rune(s)

	text := make([]rune, 0, len(d.text)-sp.Len()+len(ins))
	text = append(text, d.text[:sp.Start]...)
	text = append(text, ins...)
	text = append(text, d.text[sp.End:]...)
	d.text = text

	for t := range d.tags {
		d.tags[t] = d.tags[t].deleteRange(sp).insertAt(sp.Start, len(ins))
	}

	d.caret = sp.Start + len(ins)
	d.sel = Span{d.caret, d.caret}
}

// Insert inserts s at off.
func (d *Document) Insert(off int, s string) {
	d.Replace(off, off, s)
}

// Delete removes the runes covered by sp.
func (d *Document) Delete(sp Span) {
	d.Replace(sp.Start, sp.End, "")
}

// Sync brings the document in line with text, as typed into the input
// widget, by replacing only the range that differs. caret is the widget's
// insertion point after the edit. The edit is placed no later than the
// previous selection or caret, so typing inside repeated text keeps tags
// on the characters they annotated. It reports whether anything changed.
func (d *Document) Sync(text string, caret int) bool {
	next := []rune(text)
	limit := min(d.sel.Start, d.caret, max(0, caret))
	start, oldEnd, newEnd := changeRange(d.text, next, limit)
	if start == oldEnd && start == newEnd {
		return false
	}
	d.Replace(start, oldEnd, string(next[start:newEnd]))
	// The widget owns the caret.
	d.SetCaret(caret)
	d.Select(d.caret, d.caret)
	return true
}

// changeRange returns the range [start, oldEnd) of old that must be
// replaced by next[start:newEnd] to obtain next. start never exceeds limit.
func changeRange(old, next []rune, limit int) (start, oldEnd, newEnd int) {
	n := min(len(old), len(next), max(0, limit))
	for start < n && old[start] == next[start] {
		start++
	}
	oldEnd, newEnd = len(old), len(next)
	for oldEnd > start && newEnd > start && old[oldEnd-1] == next[newEnd-1] {
		oldEnd--
		newEnd--
	}
	return start, oldEnd, newEnd
}

// Select records the selection. Reversed ranges are normalised.
func (d *Document) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	d.sel = d.clamp(Span{start, end})
}

// Selection returns the current selection and whether it is non-empty.
func (d *Document) Selection() (Span, bool) {
	return d.sel, !d.sel.Empty()
}

// SelectedText returns the selected text, or "" without a selection.
func (d *Document) SelectedText() string {
	if d.sel.Empty() {
		return ""
	}
	return d.Slice(d.sel)
}

// SetCaret moves the insertion point.
func (d *Document) SetCaret(off int) {
	d.caret = max(0, min(off, len(d.text)))
}

// Caret returns the insertion point.
func (d *Document) Caret() int { return d.caret }

// Position converts a rune offset to a 0-based (line, column) pair.
func (d *Document) Position(off int) (line, col int) {
	off = max(0, min(off, len(d.text)))
	for _, r := range d.text[:off] {
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// Offset converts a 0-based (line, column) pair to a rune offset. Columns
// past the end of a line clamp to the line end.
func (d *Document) Offset(line, col int) int {
	off := 0
	for l := 0; l < line; l++ {
		i := indexRune(d.text[off:], '\n')
		if i < 0 {
			return len(d.text)
		}
		off += i + 1
	}
	end := indexRune(d.text[off:], '\n')
	if end < 0 {
		end = len(d.text) - off
	}
	return off + max(0, min(col, end))
}

// Lines returns the text split on newlines. An empty document has one
// empty line.
func (d *Document) Lines() []string {
	return strings.Split(string(d.text), "\n")
}

func (d *Document) clamp(sp Span) Span {
	n := len(d.text)
	sp.Start = max(0, min(sp.Start, n))
	sp.End = max(sp.Start, min(sp.End, n))
	return sp
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
