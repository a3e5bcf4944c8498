package doc

import (
	"reflect"
	"testing"
)

func TestFind(t *testing.T) {
	tests := []struct {
		text, query string
		want        []Span
	}{
		{"aaa", "aa", []Span{{0, 2}}},
		{"aaaa", "aa", []Span{{0, 2}, {2, 4}}},
		{"abcabc", "bc", []Span{{1, 3}, {4, 6}}},
		{"abc", "x", nil},
		{"abc", "", nil},
		{"", "a", nil},
		{"ñaña", "a", []Span{{1, 2}, {3, 4}}},
		{"Note note NOTE", "note", []Span{{5, 9}}},
	}
	for _, tt := range tests {
		got := Find(tt.text, tt.query)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Find(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestSearchReplacesPreviousMatches(t *testing.T) {
	d := newDoc("one two one")
	if got := d.Search("one"); len(got) != 2 {
		t.Fatalf("Search(one) = %v", got)
	}
	d.Search("two")
	if got, want := d.Spans(Search), []Span{{4, 7}}; !reflect.DeepEqual(got, want) {
		t.Errorf("search spans = %v, want %v", got, want)
	}
}

func TestSearchWithoutMatches(t *testing.T) {
	d := newDoc("one two one")
	d.Search("one")
	if got := d.Search("three"); len(got) != 0 {
		t.Errorf("Search(three) = %v", got)
	}
	if got := d.Spans(Search); len(got) != 0 {
		t.Errorf("search spans = %v, want none", got)
	}
	if got := d.Text(); got != "one two one" {
		t.Errorf("text changed to %q", got)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	d := newDoc("anything")
	if got := d.Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", got)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		text  string
		words int
		chars int
	}{
		{"", 0, 0},
		{"hello world", 2, 11},
		{"  a\tb\nc  ", 3, 9},
		{"héllo", 1, 5},
		{"one, two. three!", 3, 16},
	}
	for _, tt := range tests {
		got := Count(tt.text)
		if got.Words != tt.words || got.Chars != tt.chars {
			t.Errorf("Count(%q) = %+v, want words=%d chars=%d", tt.text, got, tt.words, tt.chars)
		}
		if ds := newDoc(tt.text).Stats(); ds != got {
			t.Errorf("Document.Stats() for %q = %+v, want %+v", tt.text, ds, got)
		}
	}
}

func TestStatsString(t *testing.T) {
	if got := (Stats{Words: 2, Chars: 11}).String(); got != "Words: 2 Characters: 11" {
		t.Errorf("String() = %q", got)
	}
}
