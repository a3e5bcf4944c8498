package spell

import (
	"strings"
	"unicode"
)

// Title is the title of the spell check report.
const Title = "Spell Check"

// Misspelled splits text on whitespace and returns, in order, every word
// the dictionary does not know. Punctuation around a word is ignored and
// tokens without letters, such as numbers, are skipped.
func Misspelled(d Dictionary, text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		w := word(tok)
		if w == "" {
			continue
		}
		if !d.Check(w) {
			out = append(out, w)
		}
	}
	return out
}

// word strips the punctuation surrounding tok and folds typographic
// apostrophes. It returns "" when no letter is left.
func word(tok string) string {
	w := strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if !strings.ContainsFunc(w, unicode.IsLetter) {
		return ""
	}
	return strings.NewReplacer("’", "'", "‘", "'").Replace(w)
}

// Report formats the result of Misspelled for the message box.
func Report(words []string) string {
	if len(words) == 0 {
		return "No misspelled words found."
	}
	return "Misspelled words:\n" + strings.Join(words, ", ")
}
