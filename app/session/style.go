package session

import (
	"fmt"
	"image/color"

	"gioui.org/font"
	"github.com/lucasb-eyer/go-colorful"

	"scribe/app/doc"
)

// Font is the base font of the whole surface.
type Font struct {
	Family string
	Size   int
}

// TagStyle is the visual effect configured for a tag name. A zero alpha
// color means the tag leaves that color alone.
type TagStyle struct {
	Weight        font.Weight
	Style         font.Style
	Underline     bool
	Strikethrough bool
	Foreground    color.NRGBA
	Background    color.NRGBA
}

// Theme is the surface color triple.
type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Cursor     color.NRGBA
}

var (
	white  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black  = color.NRGBA{A: 0xFF}
	yellow = color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}

	DayTheme   = Theme{Background: white, Foreground: black, Cursor: black}
	NightTheme = Theme{Background: black, Foreground: white, Cursor: white}
)

// SearchStyle is the look of search matches.
var SearchStyle = TagStyle{Background: yellow, Foreground: black}

// variantStyle is the style a formatting tag gets when it is first applied.
func variantStyle(t doc.Tag) TagStyle {
	switch t {
	case doc.Bold:
		return TagStyle{Weight: font.Bold}
	case doc.Italic:
		return TagStyle{Style: font.Italic}
	case doc.Underline:
		return TagStyle{Underline: true}
	case doc.Strikethrough:
		return TagStyle{Strikethrough: true}
	}
	return TagStyle{}
}

// Look is the resolved appearance of a run, layered over the base font and
// theme. Later tags in drawing order win for colors.
type Look struct {
	Font          font.Font
	Size          int
	Foreground    color.NRGBA
	Background    color.NRGBA
	Underline     bool
	Strikethrough bool
}

// Resolve computes the look of a run carrying tags.
func (s *Session) Resolve(tags doc.TagSet) Look {
	th := s.Theme()
	out := Look{
		Font:       font.Font{Typeface: font.Typeface(s.Font.Family)},
		Size:       s.Font.Size,
		Foreground: th.Foreground,
	}
	for _, t := range tags.List() {
		st := s.styles[t]
		if st.Weight != 0 {
			out.Font.Weight = st.Weight
		}
		if st.Style != 0 {
			out.Font.Style = st.Style
		}
		out.Underline = out.Underline || st.Underline
		out.Strikethrough = out.Strikethrough || st.Strikethrough
		if st.Foreground.A != 0 {
			out.Foreground = st.Foreground
		}
		if st.Background.A != 0 {
			out.Background = st.Background
		}
	}
	return out
}

// ParseColor parses "#rrggbb" (or "#rgb") into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// FormatColor formats c as "#rrggbb", ignoring alpha.
func FormatColor(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
