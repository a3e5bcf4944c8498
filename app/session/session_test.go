package session

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/app/doc"
	"scribe/app/spell"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newSession(t *testing.T, text string) (*Session, *fakeClipboard) {
	t.Helper()
	dict, err := spell.NewWordList(strings.NewReader("the\nquick\nbrown\nfox"), spell.DefaultLanguage)
	require.NoError(t, err)
	cb := &fakeClipboard{}
	s := New(Options{
		Dict:      dict,
		Clipboard: cb,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Doc.Insert(0, text)
	return s, cb
}

func dispatch(t *testing.T, s *Session, a Action, in Input) Result {
	t.Helper()
	res, err := s.Dispatch(a, in)
	require.NoError(t, err)
	return res
}

func TestFormattingRoundTrip(t *testing.T) {
	s, _ := newSession(t, "the quick brown fox")
	s.Doc.Select(4, 9)

	dispatch(t, s, ActionBold, Input{})
	assert.Equal(t, []doc.Span{{Start: 4, End: 9}}, s.Doc.Spans(doc.Bold))
	assert.Equal(t, font.Bold, s.Style(doc.Bold).Weight)

	dispatch(t, s, ActionBold, Input{})
	assert.Empty(t, s.Doc.Spans(doc.Bold))
}

func TestFormattingWithoutSelectionIsSilent(t *testing.T) {
	s, _ := newSession(t, "the fox")
	for _, a := range []Action{ActionBold, ActionItalic, ActionUnderline, ActionStrikethrough, ActionTextColor, ActionHighlight, ActionCut, ActionCopy} {
		res, err := s.Dispatch(a, Input{Color: color.NRGBA{R: 0xFF, A: 0xFF}})
		require.NoError(t, err, a.String())
		assert.Equal(t, Result{}, res, a.String())
	}
	for _, tag := range doc.Tags() {
		assert.Empty(t, s.Doc.Spans(tag), tag.String())
	}
	assert.Equal(t, TagStyle{}, s.Style(doc.Color), "color tag untouched without a selection")
}

func TestResolveLayersVariantsOverBaseFont(t *testing.T) {
	s, _ := newSession(t, "the quick brown fox")
	s.Doc.Select(0, 9)
	dispatch(t, s, ActionBold, Input{})
	dispatch(t, s, ActionItalic, Input{})
	dispatch(t, s, ActionStrikethrough, Input{})
	dispatch(t, s, ActionFont, Input{Font: Font{Family: "Go Mono", Size: 20}})

	look := s.Resolve(s.Doc.TagsAt(2))
	assert.Equal(t, font.Typeface("Go Mono"), look.Font.Typeface)
	assert.Equal(t, font.Bold, look.Font.Weight)
	assert.Equal(t, font.Italic, look.Font.Style)
	assert.True(t, look.Strikethrough)
	assert.False(t, look.Underline)
	assert.Equal(t, 20, look.Size)

	plain := s.Resolve(s.Doc.TagsAt(12))
	assert.Equal(t, font.Normal, plain.Font.Weight)
	assert.Equal(t, DayTheme.Foreground, plain.Foreground)
	assert.Zero(t, plain.Background.A)
}

func TestColorTagIsSharedByAllSpans(t *testing.T) {
	s, _ := newSession(t, "the quick brown fox")
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	blue := color.NRGBA{B: 0xFF, A: 0xFF}

	s.Doc.Select(0, 3)
	dispatch(t, s, ActionTextColor, Input{Color: red})
	s.Doc.Select(10, 15)
	dispatch(t, s, ActionTextColor, Input{Color: blue})

	assert.Equal(t, []doc.Span{{Start: 0, End: 3}, {Start: 10, End: 15}}, s.Doc.Spans(doc.Color))
	assert.Equal(t, blue, s.Resolve(s.Doc.TagsAt(0)).Foreground, "first span follows the newest color")
	assert.Equal(t, blue, s.Resolve(s.Doc.TagsAt(12)).Foreground)

	s.Doc.Select(4, 9)
	dispatch(t, s, ActionHighlight, Input{Color: color.NRGBA{G: 0x80}})
	assert.Equal(t, color.NRGBA{G: 0x80, A: 0xFF}, s.Resolve(s.Doc.TagsAt(5)).Background)
	assert.Zero(t, s.Style(doc.Highlight).Foreground.A)
}

func TestFontChangeKeepsOtherHalf(t *testing.T) {
	s, _ := newSession(t, "")
	assert.Equal(t, Font{Family: "Go", Size: 12}, s.Font)

	dispatch(t, s, ActionFont, Input{Font: Font{Family: "Go Mono", Size: 12}})
	dispatch(t, s, ActionFont, Input{Font: Font{Family: "Go Mono", Size: 30}})
	assert.Equal(t, Font{Family: "Go Mono", Size: 30}, s.Font)
}

func TestNightModeRoundTrip(t *testing.T) {
	s, _ := newSession(t, "")
	before := s.Theme()
	assert.Equal(t, DayTheme, before)

	dispatch(t, s, ActionNightMode, Input{Night: true})
	assert.Equal(t, NightTheme, s.Theme())
	assert.Equal(t, color.NRGBA{A: 0xFF}, s.Theme().Background)

	dispatch(t, s, ActionNightMode, Input{Night: false})
	assert.Equal(t, before, s.Theme())
}

func TestSpellCheckMessage(t *testing.T) {
	s, _ := newSession(t, "The quick brwn fox, jumps")
	res := dispatch(t, s, ActionSpellCheck, Input{})
	require.NotNil(t, res.Message)
	assert.Equal(t, "Spell Check", res.Message.Title)
	assert.Equal(t, "Misspelled words:\nbrwn, jumps", res.Message.Body)

	s, _ = newSession(t, "the quick brown fox")
	res = dispatch(t, s, ActionSpellCheck, Input{})
	assert.Equal(t, "No misspelled words found.", res.Message.Body)
}

func TestSpellCheckWithoutDictionary(t *testing.T) {
	s, _ := newSession(t, "text")
	s.Dict = nil
	_, err := s.Dispatch(ActionSpellCheck, Input{})
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	s, _ := newSession(t, "aaa")
	res := dispatch(t, s, ActionFind, Input{Query: "aa"})
	assert.Equal(t, 1, res.Matches)
	assert.Nil(t, res.Message)
	assert.Equal(t, []doc.Span{{Start: 0, End: 2}}, s.Doc.Spans(doc.Search))
	assert.Equal(t, SearchStyle, s.Style(doc.Search))

	res = dispatch(t, s, ActionFind, Input{Query: "b"})
	assert.Zero(t, res.Matches)
	require.NotNil(t, res.Message)
	assert.Equal(t, `No matches for "b".`, res.Message.Body)
	assert.Empty(t, s.Doc.Spans(doc.Search))
	assert.Equal(t, "aaa", s.Doc.Text())

	res = dispatch(t, s, ActionFind, Input{Query: ""})
	assert.Zero(t, res.Matches)
}

func TestClipboardCommands(t *testing.T) {
	s, cb := newSession(t, "the quick fox")

	s.Doc.Select(4, 10)
	dispatch(t, s, ActionCopy, Input{})
	assert.Equal(t, "quick ", cb.text)
	assert.Equal(t, "the quick fox", s.Doc.Text())

	res := dispatch(t, s, ActionCut, Input{})
	assert.True(t, res.TextChanged)
	assert.Equal(t, "the fox", s.Doc.Text())
	assert.Equal(t, 4, s.Doc.Caret())

	s.Doc.SetCaret(7)
	dispatch(t, s, ActionPaste, Input{})
	assert.Equal(t, "the foxquick ", s.Doc.Text())

	s.Doc.Select(0, 3)
	cb.text = "a"
	dispatch(t, s, ActionPaste, Input{})
	assert.Equal(t, "a foxquick ", s.Doc.Text())
}

func TestClipboardFailure(t *testing.T) {
	s, cb := newSession(t, "text")
	cb.err = errors.New("boom")
	s.Doc.Select(0, 4)
	_, err := s.Dispatch(ActionCut, Input{})
	assert.ErrorIs(t, err, cb.err)
	assert.Equal(t, "text", s.Doc.Text(), "failed cut keeps the text")
}

func TestOpenInsertsAtCaret(t *testing.T) {
	s, _ := newSession(t, "headtail")
	s.Doc.SetCaret(4)
	res := dispatch(t, s, ActionOpen, Input{Reader: strings.NewReader("-mid\r\ndle\r-")})
	assert.True(t, res.TextChanged)
	assert.Equal(t, "head-mid\ndle\n-tail", s.Doc.Text())
}

func TestSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	text := "first line\n\tsecond ünïcode line\n\nlast"

	s, _ := newSession(t, text)
	s.Doc.Select(0, 5)
	dispatch(t, s, ActionBold, Input{})
	require.NoError(t, s.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(data), "tags are not written")

	fresh, _ := newSession(t, "")
	require.NoError(t, fresh.OpenFile(path))
	assert.Equal(t, text, fresh.Doc.Text())
	assert.Empty(t, fresh.Doc.Spans(doc.Bold))
}

func TestNewThenSaveWritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	s, _ := newSession(t, "unsaved work")
	s.Doc.Select(0, 8)
	dispatch(t, s, ActionUnderline, Input{})

	res := dispatch(t, s, ActionNew, Input{})
	assert.True(t, res.TextChanged)
	assert.Empty(t, s.Doc.Spans(doc.Underline))
	require.NoError(t, s.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpenFileErrors(t *testing.T) {
	s, _ := newSession(t, "")
	err := s.OpenFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = s.SaveFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"))
	assert.Error(t, err)
}

func TestSaveToWriter(t *testing.T) {
	s, _ := newSession(t, "plain")
	var buf bytes.Buffer
	dispatch(t, s, ActionSave, Input{Writer: &buf})
	assert.Equal(t, "plain", buf.String())

	_, err := s.Dispatch(ActionSave, Input{})
	assert.Error(t, err)
}

func TestExitAndUnknownAction(t *testing.T) {
	s, _ := newSession(t, "")
	assert.True(t, dispatch(t, s, ActionExit, Input{}).Exit)

	_, err := s.Dispatch(Action(999), Input{})
	assert.Error(t, err)
	assert.Equal(t, "Action(999)", Action(999).String())
}

func TestCommandTablePrompts(t *testing.T) {
	want := map[Action]Prompt{
		ActionOpen:      PromptOpenFile,
		ActionSave:      PromptSaveFile,
		ActionTextColor: PromptColor,
		ActionHighlight: PromptColor,
		ActionFind:      PromptQuery,
		ActionNew:       PromptNone,
		ActionBold:      PromptNone,
	}
	for a, p := range want {
		c, ok := Lookup(a)
		require.True(t, ok, a.String())
		assert.Equal(t, p, c.Prompt, a.String())
	}
	assert.Len(t, Commands(), int(ActionSpellCheck)+1)
}

func TestStatusLine(t *testing.T) {
	s, _ := newSession(t, "one two\nthree")
	s.Doc.SetCaret(10)
	assert.Equal(t, "Words: 3 Characters: 13   Ln 2, Col 3", s.StatusLine())
}

func TestColorHex(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x80, A: 0xFF}, c)
	assert.Equal(t, "#ff8000", FormatColor(c))

	c, err = ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 0xFF, A: 0xFF}, c)

	_, err = ParseColor("orange")
	assert.Error(t, err)
}
