package doc

import (
	"strings"
	"unicode/utf8"
)

// Find returns the literal, case-sensitive occurrences of query in text,
// scanning left to right and resuming after the end of each match, so
// matches never overlap. An empty query matches nothing.
func Find(text, query string) []Span {
	if query == "" {
		return nil
	}
	qlen := utf8.RuneCountInString(query)
	var spans []Span
	pos, off := 0, 0 // byte position, rune offset
	for {
		i := strings.Index(text[pos:], query)
		if i < 0 {
			return spans
		}
		off += utf8.RuneCountInString(text[pos : pos+i])
		spans = append(spans, Span{off, off + qlen})
		off += qlen
		pos += i + len(query)
	}
}

// Search replaces the search tag with the occurrences of query and
// returns them.
func (d *Document) Search(query string) []Span {
	d.ClearTag(Search)
	spans := Find(string(d.text), query)
	for _, sp := range spans {
		d.AddTag(Search, sp)
	}
	return spans
}
