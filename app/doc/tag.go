package doc

import "strings"

// Tag is a named style or semantic annotation applied to spans of text.
type Tag uint8

const (
	Bold Tag = iota
	Italic
	Underline
	Strikethrough
	Color
	Highlight
	Search

	numTags
)

var tagNames = [numTags]string{
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underline",
	Strikethrough: "strikethrough",
	Color:         "color",
	Highlight:     "highlight",
	Search:        "search",
}

// Tags lists every tag in drawing order.
func Tags() []Tag {
	out := make([]Tag, numTags)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return "tag(?)"
}

// ParseTag returns the tag with the given name.
func ParseTag(name string) (Tag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return 0, false
}

// TagSet is a set of tags carried by a single character.
type TagSet uint8

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool { return s&(1<<t) != 0 }

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet { return s | 1<<t }

// Without returns the set with t removed.
func (s TagSet) Without(t Tag) TagSet { return s &^ (1 << t) }

// List returns the tags in the set in drawing order.
func (s TagSet) List() []Tag {
	var out []Tag
	for t := Tag(0); t < numTags; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
