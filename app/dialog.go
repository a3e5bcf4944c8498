package main

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

var scrimColor = color.NRGBA{A: 0x80}

// layoutModal dims the window and centers content on a raised surface.
func layoutModal(gtx C, th *material.Theme, content layout.Widget) D {
	paint.FillShape(gtx.Ops, scrimColor, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())
	return layout.Center.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(480)))
		return component.Surface(th).Layout(gtx, func(gtx C) D {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
		})
	})
}

// messageBox is a modal informational dialog with a single OK button.
type messageBox struct {
	visible bool
	title   string
	body    string
	ok      widget.Clickable
}

func (m *messageBox) Show(title, body string) {
	m.visible = true
	m.title = title
	m.body = body
}

func (m *messageBox) Update(gtx C) {
	if m.ok.Clicked(gtx) {
		m.visible = false
	}
}

func (m *messageBox) Layout(gtx C, th *material.Theme) D {
	return layoutModal(gtx, th, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(th, m.title).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.Body1(th, m.body).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.E.Layout(gtx, material.Button(th, &m.ok, "OK").Layout)
			}),
		)
	})
}
