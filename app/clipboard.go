package main

import (
	"errors"
	"io"
	"strings"

	"gioui.org/io/clipboard"
	"gioui.org/io/event"

	"scribe/app/session"
)

// windowClipboard is the clipboard behind the Cut, Copy and Paste menu
// items. It uses the host clipboard and falls back to the window's own,
// which needs no helper programs, when the host has no clipboard utility.
type windowClipboard struct {
	host    session.Clipboard
	pending []string
	paste   bool
}

func (c *windowClipboard) WriteAll(text string) error {
	err := c.host.WriteAll(text)
	if errors.Is(err, session.ErrNoClipboard) {
		c.pending = append(c.pending, text)
		return nil
	}
	return err
}

func (c *windowClipboard) ReadAll() (string, error) {
	return c.host.ReadAll()
}

// deferPaste reports whether a failed paste should go through the window
// instead. The paste is issued by the next flush.
func (c *windowClipboard) deferPaste(err error) bool {
	if !errors.Is(err, session.ErrNoClipboard) {
		return false
	}
	c.paste = true
	return true
}

// flush sends queued writes to the window clipboard and asks it to paste
// into target, which inserts the text itself.
func (c *windowClipboard) flush(gtx C, target event.Tag) {
	for _, text := range c.pending {
		gtx.Execute(clipboard.WriteCmd{Type: "application/text", Data: io.NopCloser(strings.NewReader(text))})
	}
	c.pending = c.pending[:0]
	if c.paste {
		gtx.Execute(clipboard.ReadCmd{Tag: target})
		c.paste = false
	}
}
