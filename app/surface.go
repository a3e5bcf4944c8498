package main

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"scribe/app/doc"
	"scribe/app/session"
)

var selectionColor = color.NRGBA{R: 0x26, G: 0x4F, B: 0x78, A: 0x60}

// editorInset pads the text inside the surface; the gutter uses it too.
var editorInset = unit.Dp(4)

// layoutSurface draws the line gutter, its drag handle and the text
// surface. The editor is laid out first so the gutter can follow the rows
// it produced this frame.
func layoutSurface(gtx C, th *material.Theme, es *EditorState, div *gutterDivider) D {
	sess := es.Sess
	theme := sess.Theme()
	size := gtx.Constraints.Max
	gw := div.width(gtx)
	dw := gtx.Dp(dividerWidth)

	egtx := gtx
	egtx.Constraints = layout.Exact(image.Pt(max(0, size.X-gw-dw), size.Y))
	off := op.Offset(image.Pt(gw+dw, 0)).Push(gtx.Ops)
	layoutEditor(egtx, th, es)
	off.Pop()

	ggtx := gtx
	ggtx.Constraints = layout.Exact(image.Pt(gw, size.Y))
	cl := clip.Rect(image.Rect(0, 0, gw, size.Y)).Push(gtx.Ops)
	LayoutGutter(ggtx, th, theme, gw, es.LineCount(), lineRows(&es.Editor, sess.Doc), gtx.Dp(editorInset), unit.Sp(float32(sess.Font.Size)))
	cl.Pop()

	dgtx := gtx
	dgtx.Constraints = layout.Exact(image.Pt(dw, size.Y))
	off = op.Offset(image.Pt(gw, 0)).Push(gtx.Ops)
	_, _, line := gutterColors(theme)
	div.Layout(dgtx, line)
	off.Pop()

	return D{Size: size}
}

func layoutEditor(gtx C, th *material.Theme, es *EditorState) D {
	sess := es.Sess
	ed := material.Editor(th, &es.Editor, "")
	ed.Font = sess.Resolve(0).Font
	ed.Color = color.NRGBA{A: 0x00} // transparent text + caret (overlay draws styled text)
	ed.TextSize = unit.Sp(float32(sess.Font.Size))
	ed.SelectionColor = selectionColor

	return layout.UniformInset(editorInset).Layout(gtx, func(gtx C) D {
		// 1. Editor layout (transparent text, handles input + selection)
		dims := ed.Layout(gtx)

		// 2. Styled text overlay clipped to editor bounds
		cl := clip.Rect(image.Rect(0, 0, dims.Size.X, dims.Size.Y)).Push(gtx.Ops)
		drawPieces(gtx, th, LinePieces(&es.Editor, sess))
		drawCaret(gtx, th, es)
		cl.Pop()

		return dims
	})
}

// drawCaret paints the caret in the theme's cursor color, since the
// editor's own caret is transparent.
func drawCaret(gtx C, th *material.Theme, es *EditorState) {
	if !gtx.Focused(&es.Editor) {
		return
	}
	lineHeight, baseline := measureLineMetrics(gtx, th, es.Sess)
	ascent := lineHeight - baseline
	// CaretCoords().Y is the caret's baseline, adjusted for scroll.
	pt := es.Editor.CaretCoords()
	cx, cy := int(pt.X), int(pt.Y)
	paint.FillShape(gtx.Ops, es.Sess.Theme().Cursor,
		clip.Rect(image.Rect(cx, cy-ascent, cx+2, cy+baseline)).Op())
}

// currentColor is the color a color dialog opens with.
func currentColor(sess *session.Session, a session.Action) color.NRGBA {
	switch a {
	case session.ActionHighlight:
		if c := sess.Style(doc.Highlight).Background; c.A != 0 {
			return c
		}
		return color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	default:
		if c := sess.Style(doc.Color).Foreground; c.A != 0 {
			return c
		}
		return sess.Theme().Foreground
	}
}
