package main

import (
	"gioui.org/widget"

	"scribe/app/session"
)

// EditorState pairs the input widget with the session's document. The
// widget handles typing, caret and selection; the document keeps the text
// and its tags.
type EditorState struct {
	Editor widget.Editor
	Sess   *session.Session
	Dirty  bool
}

// NewEditorState creates a new editor with default settings.
func NewEditorState(sess *session.Session) *EditorState {
	es := &EditorState{Sess: sess}
	es.Editor.SingleLine = false
	es.Editor.Submit = false
	es.Editor.SetText(sess.Doc.Text())
	return es
}

// Pull copies the widget's text, caret and selection into the document.
// It reports whether the text changed.
func (es *EditorState) Pull() bool {
	caret, _ := es.Editor.Selection()
	changed := es.Sess.Doc.Sync(es.Editor.Text(), caret)
	es.PullSelection()
	if changed {
		es.Dirty = true
	}
	return changed
}

// PullSelection copies only the caret and selection.
func (es *EditorState) PullSelection() {
	caret, anchor := es.Editor.Selection()
	es.Sess.Doc.SetCaret(caret)
	es.Sess.Doc.Select(caret, anchor)
}

// Push replaces the widget's text with the document's after a command
// rewrote it.
func (es *EditorState) Push() {
	d := es.Sess.Doc
	es.Editor.SetText(d.Text())
	es.Editor.SetCaret(d.Caret(), d.Caret())
	es.Dirty = true
}

// Lines returns the text buffer as a slice of lines.
func (es *EditorState) Lines() []string {
	return es.Sess.Doc.Lines()
}

// LineCount returns the number of lines in the buffer.
func (es *EditorState) LineCount() int {
	return len(es.Lines())
}

// LoadFile inserts a file at the caret, as File ▸ Open does.
func (es *EditorState) LoadFile(path string) error {
	es.Pull()
	if err := es.Sess.OpenFile(path); err != nil {
		return err
	}
	es.Push()
	es.Dirty = false
	return nil
}

// Title returns a window title string showing the dirty state.
func (es *EditorState) Title() string {
	if es.Dirty {
		return "* scribe"
	}
	return "scribe"
}
