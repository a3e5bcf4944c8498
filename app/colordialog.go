package main

import (
	"image/color"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/colorpicker"

	"scribe/app/session"
)

// colorDialog asks for a color before Text Color or Highlight runs.
type colorDialog struct {
	visible bool
	action  session.Action
	picker  colorpicker.State
	hex     widget.Editor
	hexErr  string

	// chosen is the last color set from Open or the hex field. shown is
	// the picker's reading of it, and hexText the text written for it.
	chosen  color.NRGBA
	shown   color.NRGBA
	hexText string
	ok      widget.Clickable
	cancel  widget.Clickable
}

func newColorDialog() *colorDialog {
	d := &colorDialog{}
	d.hex.SingleLine = true
	d.hex.Submit = true
	return d
}

// Open shows the dialog for action, starting from initial.
func (d *colorDialog) Open(action session.Action, initial color.NRGBA) {
	d.visible = true
	d.action = action
	d.hexErr = ""
	d.set(initial)
}

func (d *colorDialog) set(c color.NRGBA) {
	c.A = 0xFF
	d.chosen = c
	d.picker.SetColor(c)
	d.shown = d.picker.Color()
	d.hexText = session.FormatColor(c)
	d.hex.SetText(d.hexText)
}

// Update returns the command to run once the user confirms. Cancel closes
// the dialog without a request.
func (d *colorDialog) Update(gtx C) []request {
	if !d.visible {
		return nil
	}
	if d.cancel.Clicked(gtx) {
		d.visible = false
		return nil
	}
	for {
		ev, ok := d.hex.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			d.applyHex()
		}
	}
	if !d.ok.Clicked(gtx) {
		return nil
	}
	c, ok := d.result()
	if !ok {
		return nil
	}
	d.visible = false
	return []request{{action: d.action, in: session.Input{Color: c}, answered: true}}
}

// result returns the color to apply. A hex value typed without Enter
// wins; otherwise the sliders do if they moved. It reports false when the
// typed value does not parse, leaving the dialog open.
func (d *colorDialog) result() (color.NRGBA, bool) {
	if strings.TrimSpace(d.hex.Text()) != d.hexText {
		if !d.applyHex() {
			return color.NRGBA{}, false
		}
		return d.chosen, true
	}
	if c := d.picker.Color(); c != d.shown {
		c.A = 0xFF
		return c, true
	}
	return d.chosen, true
}

func (d *colorDialog) applyHex() bool {
	c, err := session.ParseColor(strings.TrimSpace(d.hex.Text()))
	if err != nil {
		d.hexErr = "expected #rrggbb"
		return false
	}
	d.hexErr = ""
	d.set(c)
	return true
}

func (d *colorDialog) Layout(gtx C, th *material.Theme) D {
	return layoutModal(gtx, th, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(th, d.action.String()).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(colorpicker.Picker(th, &d.picker, "Color").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body1(th, "Hex ").Layout),
					layout.Flexed(1, material.Editor(th, &d.hex, "#rrggbb").Layout),
					layout.Rigid(func(gtx C) D {
						lbl := material.Caption(th, d.hexErr)
						lbl.Color = color.NRGBA{R: 0xC0, A: 0xFF}
						return lbl.Layout(gtx)
					}),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.E.Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(material.Button(th, &d.cancel, "Cancel").Layout),
						layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
						layout.Rigid(material.Button(th, &d.ok, "OK").Layout),
					)
				})
			}),
		)
	})
}
