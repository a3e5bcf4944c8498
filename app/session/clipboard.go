package session

import "errors"

// Clipboard is the host clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// ErrNoClipboard is returned when the host has no clipboard utility, such
// as xclip, xsel or wl-clipboard on Linux.
var ErrNoClipboard = errors.New("no clipboard utility available")

type systemClipboard struct{}

// SystemClipboard returns the host environment's clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }
