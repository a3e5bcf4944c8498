package doc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stats holds the derived word and character counts of a text.
type Stats struct {
	Words int
	Chars int
}

// Count computes Stats for text. Words are whitespace-separated tokens;
// characters are runes.
func Count(text string) Stats {
	return Stats{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}

// Stats returns the counts for the whole document.
func (d *Document) Stats() Stats {
	return Stats{
		Words: len(strings.Fields(string(d.text))),
		Chars: len(d.text),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Words: %d Characters: %d", s.Words, s.Chars)
}
