// Package session owns the editor's mutable state and the command table
// that the window dispatches menu and toolbar actions through.
package session

import (
	"fmt"
	"log/slog"
	"os"

	"scribe/app/doc"
	"scribe/app/spell"
)

// Session is the state shared by every command handler.
type Session struct {
	Doc       *doc.Document
	Font      Font
	Night     bool
	Dict      spell.Dictionary
	Clipboard Clipboard
	Log       *slog.Logger

	styles map[doc.Tag]TagStyle
}

// Options configures New. Zero fields get defaults.
type Options struct {
	Font      Font
	Dict      spell.Dictionary
	Clipboard Clipboard
	Logger    *slog.Logger
}

// New creates a session with an empty document.
func New(opts Options) *Session {
	if opts.Font.Family == "" {
		opts.Font.Family = "Go"
	}
	if opts.Font.Size == 0 {
		opts.Font.Size = 12
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		Doc:       doc.New(),
		Font:      opts.Font,
		Dict:      opts.Dict,
		Clipboard: opts.Clipboard,
		Log:       opts.Logger,
		styles:    make(map[doc.Tag]TagStyle),
	}
}

// Theme returns the color triple for the current night mode flag.
func (s *Session) Theme() Theme {
	if s.Night {
		return NightTheme
	}
	return DayTheme
}

// Style returns the configured style of t.
func (s *Session) Style(t doc.Tag) TagStyle {
	return s.styles[t]
}

// Stats returns the word and character counts of the document.
func (s *Session) Stats() doc.Stats {
	return s.Doc.Stats()
}

// StatusLine is the text of the status readout.
func (s *Session) StatusLine() string {
	line, col := s.Doc.Position(s.Doc.Caret())
	return fmt.Sprintf("%s   Ln %d, Col %d", s.Doc.Stats(), line+1, col+1)
}

// OpenFile inserts the contents of path at the caret.
func (s *Session) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	_, err = s.Dispatch(ActionOpen, Input{Reader: f})
	return err
}

// SaveFile writes the document text to path, replacing its contents.
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	_, err = s.Dispatch(ActionSave, Input{Writer: f})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
