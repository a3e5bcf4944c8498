package session

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"scribe/app/doc"
	"scribe/app/spell"
)

// Action identifies a menu or toolbar command.
type Action int

const (
	ActionNew Action = iota
	ActionOpen
	ActionSave
	ActionExit
	ActionCut
	ActionCopy
	ActionPaste
	ActionFind
	ActionBold
	ActionItalic
	ActionUnderline
	ActionStrikethrough
	ActionTextColor
	ActionHighlight
	ActionFont
	ActionNightMode
	ActionSpellCheck
)

// Prompt is the dialog the window must run before dispatching an action.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptOpenFile
	PromptSaveFile
	PromptColor
	PromptQuery
)

// Input carries a dialog's answer, or toolbar state, into a command.
type Input struct {
	Reader io.Reader   // PromptOpenFile
	Writer io.Writer   // PromptSaveFile
	Color  color.NRGBA // PromptColor
	Query  string      // PromptQuery
	Font   Font        // ActionFont
	Night  bool        // ActionNightMode
}

// Message is an informational message box.
type Message struct {
	Title string
	Body  string
}

// Result tells the window what to refresh after a command.
type Result struct {
	TextChanged bool
	Message     *Message
	Matches     int
	Exit        bool
}

// Command is one entry in the command table.
type Command struct {
	Action Action
	Label  string
	Prompt Prompt
	Run    func(s *Session, in Input) (Result, error)
}

var commands = []Command{
	{ActionNew, "New", PromptNone, (*Session).newDocument},
	{ActionOpen, "Open", PromptOpenFile, (*Session).open},
	{ActionSave, "Save", PromptSaveFile, (*Session).save},
	{ActionExit, "Exit", PromptNone, func(*Session, Input) (Result, error) { return Result{Exit: true}, nil }},
	{ActionCut, "Cut", PromptNone, (*Session).cut},
	{ActionCopy, "Copy", PromptNone, (*Session).copySelection},
	{ActionPaste, "Paste", PromptNone, (*Session).paste},
	{ActionFind, "Find…", PromptQuery, (*Session).find},
	{ActionBold, "Bold", PromptNone, toggle(doc.Bold)},
	{ActionItalic, "Italic", PromptNone, toggle(doc.Italic)},
	{ActionUnderline, "Underline", PromptNone, toggle(doc.Underline)},
	{ActionStrikethrough, "Strikethrough", PromptNone, toggle(doc.Strikethrough)},
	{ActionTextColor, "Text Color", PromptColor, colorize(doc.Color)},
	{ActionHighlight, "Highlight", PromptColor, colorize(doc.Highlight)},
	{ActionFont, "Font", PromptNone, (*Session).setFont},
	{ActionNightMode, "Night Mode", PromptNone, (*Session).setNight},
	{ActionSpellCheck, "Spell Check", PromptNone, (*Session).spellCheck},
}

// Lookup returns the table entry for a.
func Lookup(a Action) (Command, bool) {
	for _, c := range commands {
		if c.Action == a {
			return c, true
		}
	}
	return Command{}, false
}

// Commands returns the command table in menu order.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

func (a Action) String() string {
	if c, ok := Lookup(a); ok {
		return c.Label
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Dispatch runs the handler for a. Acting on an empty selection is not an
// error: the command does nothing.
func (s *Session) Dispatch(a Action, in Input) (Result, error) {
	c, ok := Lookup(a)
	if !ok {
		return Result{}, fmt.Errorf("unknown action %d", int(a))
	}
	res, err := c.Run(s, in)
	if errors.Is(err, doc.ErrNoSelection) {
		s.Log.Debug("command ignored", "action", c.Label, "reason", err)
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", strings.TrimSuffix(c.Label, "…"), err)
	}
	s.Log.Debug("command", "action", c.Label, "textChanged", res.TextChanged)
	return res, nil
}

func (s *Session) newDocument(Input) (Result, error) {
	s.Doc.Reset()
	return Result{TextChanged: true}, nil
}

func (s *Session) open(in Input) (Result, error) {
	if in.Reader == nil {
		return Result{}, errors.New("no file to read")
	}
	data, err := io.ReadAll(in.Reader)
	if err != nil {
		return Result{}, err
	}
	// Normalize line endings
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	s.Doc.Insert(s.Doc.Caret(), content)
	return Result{TextChanged: true}, nil
}

func (s *Session) save(in Input) (Result, error) {
	if in.Writer == nil {
		return Result{}, errors.New("no file to write")
	}
	_, err := io.WriteString(in.Writer, s.Doc.Text())
	return Result{}, err
}

func (s *Session) cut(Input) (Result, error) {
	sel, ok := s.Doc.Selection()
	if !ok {
		return Result{}, doc.ErrNoSelection
	}
	if err := s.Clipboard.WriteAll(s.Doc.Slice(sel)); err != nil {
		return Result{}, err
	}
	s.Doc.Delete(sel)
	return Result{TextChanged: true}, nil
}

func (s *Session) copySelection(Input) (Result, error) {
	sel, ok := s.Doc.Selection()
	if !ok {
		return Result{}, doc.ErrNoSelection
	}
	return Result{}, s.Clipboard.WriteAll(s.Doc.Slice(sel))
}

func (s *Session) paste(Input) (Result, error) {
	text, err := s.Clipboard.ReadAll()
	if err != nil {
		return Result{}, err
	}
	if text == "" {
		return Result{}, nil
	}
	if sel, ok := s.Doc.Selection(); ok {
		s.Doc.Replace(sel.Start, sel.End, text)
	} else {
		s.Doc.Insert(s.Doc.Caret(), text)
	}
	return Result{TextChanged: true}, nil
}

func (s *Session) find(in Input) (Result, error) {
	matches := s.Doc.Search(in.Query)
	s.styles[doc.Search] = SearchStyle
	res := Result{Matches: len(matches)}
	if len(matches) == 0 {
		res.Message = &Message{Title: "Search", Body: fmt.Sprintf("No matches for %q.", in.Query)}
	}
	return res, nil
}

func toggle(t doc.Tag) func(*Session, Input) (Result, error) {
	return func(s *Session, _ Input) (Result, error) {
		added, err := s.Doc.ToggleTag(t)
		if err != nil {
			return Result{}, err
		}
		if added {
			s.styles[t] = variantStyle(t)
		}
		return Result{}, nil
	}
}

// colorize adds the selection to a color tag and recolors every span that
// carries it.
func colorize(t doc.Tag) func(*Session, Input) (Result, error) {
	return func(s *Session, in Input) (Result, error) {
		sel, ok := s.Doc.Selection()
		if !ok {
			return Result{}, doc.ErrNoSelection
		}
		s.Doc.AddTag(t, sel)
		c := in.Color
		c.A = 0xFF
		st := s.styles[t]
		if t == doc.Highlight {
			st.Background = c
		} else {
			st.Foreground = c
		}
		s.styles[t] = st
		return Result{}, nil
	}
}

func (s *Session) setFont(in Input) (Result, error) {
	if in.Font.Family != "" {
		s.Font.Family = in.Font.Family
	}
	if in.Font.Size > 0 {
		s.Font.Size = in.Font.Size
	}
	return Result{}, nil
}

func (s *Session) setNight(in Input) (Result, error) {
	s.Night = in.Night
	return Result{}, nil
}

func (s *Session) spellCheck(Input) (Result, error) {
	if s.Dict == nil {
		return Result{}, errors.New("no dictionary loaded")
	}
	words := spell.Misspelled(s.Dict, s.Doc.Text())
	return Result{Message: &Message{Title: spell.Title, Body: spell.Report(words)}}, nil
}
