package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"scribe/app/session"
)

func TestColorDialogResult(t *testing.T) {
	initial := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}

	d := newColorDialog()
	d.Open(session.ActionTextColor, initial)
	c, ok := d.result()
	assert.True(t, ok)
	assert.Equal(t, initial, c, "untouched dialog keeps the starting color")

	// Typed but never submitted with Enter.
	d.Open(session.ActionTextColor, initial)
	d.hex.SetText("#00ff00")
	c, ok = d.result()
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{G: 0xFF, A: 0xFF}, c)
	assert.Empty(t, d.hexErr)

	d.Open(session.ActionHighlight, initial)
	d.hex.SetText("zzz")
	_, ok = d.result()
	assert.False(t, ok, "a bad hex value keeps the dialog open")
	assert.NotEmpty(t, d.hexErr)
	assert.True(t, d.visible)

	// Moving the sliders without touching the hex field.
	d.Open(session.ActionTextColor, initial)
	d.picker.R.Value = 1
	c, ok = d.result()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xFF), c.R)
	assert.Equal(t, uint8(0xFF), c.A)
}
