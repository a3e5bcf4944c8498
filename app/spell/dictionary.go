// Package spell checks words against a language dictionary.
package spell

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// enUS is the SCOWL-derived en_US list, one word per line, gzipped.
//
//go:embed en_US.txt.gz
var enUS []byte

// DefaultLanguage is the language of the embedded word list.
const DefaultLanguage = "en_US"

// Dictionary answers whether a token is a valid word.
type Dictionary interface {
	Check(word string) bool
}

// WordList is a Dictionary backed by a set of known words.
type WordList struct {
	lang  language.Tag
	lower cases.Caser
	words map[string]struct{}
}

// ParseLanguage accepts both POSIX ("en_US") and BCP 47 ("en-US") names.
func ParseLanguage(name string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("spell: language %q: %w", name, err)
	}
	return tag, nil
}

// NewWordList reads one word per line from r. Blank lines and lines
// starting with '#' are skipped.
func NewWordList(r io.Reader, lang string) (*WordList, error) {
	tag, err := ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	wl := &WordList{
		lang:  tag,
		lower: cases.Lower(tag),
		words: make(map[string]struct{}),
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		wl.words[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spell: reading word list: %w", err)
	}
	return wl, nil
}

// Default returns the embedded word list for lang. Only en_US ships with
// the binary; other languages need a word list file.
func Default(lang string) (*WordList, error) {
	tag, err := ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	if base, _ := tag.Base(); base.String() != "en" {
		return nil, fmt.Errorf("spell: no built-in dictionary for %q", lang)
	}
	zr, err := gzip.NewReader(bytes.NewReader(enUS))
	if err != nil {
		return nil, fmt.Errorf("spell: built-in dictionary: %w", err)
	}
	defer zr.Close()
	return NewWordList(zr, lang)
}

// Load reads a word list file, or the embedded list when path is empty.
func Load(path, lang string) (*WordList, error) {
	if path == "" {
		return Default(lang)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spell: %w", err)
	}
	defer f.Close()
	return NewWordList(f, lang)
}

// Language returns the language tag of the list.
func (wl *WordList) Language() language.Tag { return wl.lang }

// Len returns the number of known words.
func (wl *WordList) Len() int { return len(wl.words) }

// Check reports whether word is known. Capitalised and all-caps forms of
// a known lower-case word are accepted; the reverse is not.
func (wl *WordList) Check(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := wl.words[word]; ok {
		return true
	}
	if !isTitle(word) && !isUpper(word) {
		return false
	}
	_, ok := wl.words[wl.lower.String(word)]
	return ok
}

func isTitle(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return false
	}
	for _, r := range s[size:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isUpper(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}
