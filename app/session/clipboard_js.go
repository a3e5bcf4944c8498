//go:build js

package session

// The browser clipboard is only reachable through the text widget.

func (systemClipboard) ReadAll() (string, error) { return "", ErrNoClipboard }

func (systemClipboard) WriteAll(string) error { return ErrNoClipboard }
