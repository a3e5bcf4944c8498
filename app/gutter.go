package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"scribe/app/session"
)

var gutterWidth = unit.Dp(44)

// gutterColors derives the gutter palette from the surface theme so night
// mode carries over.
func gutterColors(t session.Theme) (bg, fg, divider color.NRGBA) {
	bg = mix(t.Background, t.Foreground, 0x0C)
	fg = mix(t.Background, t.Foreground, 0x80)
	divider = mix(t.Background, t.Foreground, 0x30)
	return bg, fg, divider
}

// mix blends b over a with weight w/255.
func mix(a, b color.NRGBA, w uint8) color.NRGBA {
	blend := func(x, y uint8) uint8 {
		return uint8((int(x)*(255-int(w)) + int(y)*int(w)) / 255)
	}
	return color.NRGBA{R: blend(a.R, b.R), G: blend(a.G, b.G), B: blend(a.B, b.B), A: 0xFF}
}

// LayoutGutter renders line numbers in a column width pixels wide. Each
// number sits beside the first visual row of its line, so wrapped lines
// get a single number. topPad is the editor's inset above its rows.
func LayoutGutter(gtx layout.Context, th *material.Theme, theme session.Theme, width, lineCount int, rows []lineRow, topPad int, textSize unit.Sp) layout.Dimensions {
	height := gtx.Constraints.Max.Y
	bg, fg, _ := gutterColors(theme)

	// Background
	rect := image.Rect(0, 0, width, height)
	paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())

	// Determine number width for formatting
	digits := max(2, len(fmt.Sprintf("%d", lineCount)))
	fmtStr := fmt.Sprintf("%%%dd", digits)
	labelWidth := max(0, width-gtx.Dp(6))

	for _, row := range rows {
		y := topPad + row.Bounds.Min.Y
		h := row.Bounds.Dy()
		if y+h < 0 || y > height {
			continue
		}

		lineLabel := material.Label(th, textSize, fmt.Sprintf(fmtStr, row.Line+1))
		lineLabel.Color = fg
		lineLabel.Alignment = text.End
		lineLabel.MaxLines = 1

		// Position with offset, clip to row bounds, then render
		off := op.Offset(image.Pt(0, y)).Push(gtx.Ops)
		cl := clip.Rect(image.Rect(0, 0, labelWidth, h)).Push(gtx.Ops)
		labelGtx := gtx
		labelGtx.Constraints = layout.Exact(image.Pt(labelWidth, h))
		lineLabel.Layout(labelGtx)
		cl.Pop()
		off.Pop()
	}

	return layout.Dimensions{Size: image.Pt(width, height)}
}
