package main

import (
	"image"
	"unicode/utf8"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"scribe/app/doc"
	"scribe/app/session"
)

// Piece is a stretch of one visual row drawn with a single look. Its
// geometry comes from the input widget's own layout, so wrapped lines and
// scrolling stay aligned with the caret and selection.
type Piece struct {
	Text string
	Look session.Look
	// Bounds is the row box covered by the piece, relative to the editor.
	Bounds image.Rectangle
	// Baseline is the y coordinate of the text baseline.
	Baseline int
}

// lineRow is the first visual row of a logical line.
type lineRow struct {
	Line   int
	Bounds image.Rectangle
}

// lineRows returns the first visual row of every logical line that is
// visible in ed.
func lineRows(ed *widget.Editor, d *doc.Document) []lineRow {
	var (
		out  []lineRow
		regs []widget.Region
	)
	off := 0
	for i, line := range d.Lines() {
		regs = ed.Regions(off, off, regs)
		if len(regs) > 0 {
			out = append(out, lineRow{Line: i, Bounds: regs[0].Bounds})
		}
		off += utf8.RuneCountInString(line) + 1
	}
	return out
}

// LinePieces splits the visible text into pieces of constant look, one or
// more per visual row.
func LinePieces(ed *widget.Editor, sess *session.Session) []Piece {
	d := sess.Doc
	var (
		out  []Piece
		regs []widget.Region
	)
	off := 0
	for _, line := range d.Lines() {
		start := off
		n := utf8.RuneCountInString(line)
		off += n + 1
		if n == 0 {
			continue
		}
		if regs = ed.Regions(start, start+n, regs); len(regs) == 0 {
			continue
		}
		for _, run := range d.Runs(doc.Span{Start: start, End: start + n}) {
			out = appendRunPieces(out, ed, &regs, []rune(d.Slice(run.Span)), run.Start, sess.Resolve(run.Tags))
		}
	}
	return out
}

// appendRunPieces cuts one run wherever the widget wrapped it.
func appendRunPieces(out []Piece, ed *widget.Editor, regs *[]widget.Region, text []rune, base int, look session.Look) []Piece {
	open := false
	var cur Piece
	from := 0
	flush := func(to int) {
		if open {
			cur.Text = string(text[from:to])
			out = append(out, cur)
			open = false
		}
	}
	for i := range text {
		r, ok := runeRegion(ed, base+i, regs)
		if !ok {
			flush(i)
			continue
		}
		if open && r.Bounds.Min.Y == cur.Bounds.Min.Y {
			cur.Bounds.Min.X = min(cur.Bounds.Min.X, r.Bounds.Min.X)
			cur.Bounds.Max.X = max(cur.Bounds.Max.X, r.Bounds.Max.X)
			continue
		}
		flush(i)
		open = true
		from = i
		cur = Piece{
			Look:     look,
			Bounds:   r.Bounds,
			Baseline: r.Bounds.Max.Y - r.Baseline,
		}
	}
	flush(len(text))
	return out
}

// runeRegion returns the box of the rune at off. A rune that starts a
// wrapped row also touches the end of the row above with an empty box;
// the box with width wins.
func runeRegion(ed *widget.Editor, off int, regs *[]widget.Region) (widget.Region, bool) {
	*regs = ed.Regions(off, off+1, *regs)
	rs := *regs
	if len(rs) == 0 {
		return widget.Region{}, false
	}
	for _, r := range rs {
		if r.Bounds.Dx() > 0 {
			return r, true
		}
	}
	return rs[len(rs)-1], true
}

// drawPieces paints tag backgrounds, the text and the underline and
// strikethrough rules of each piece.
func drawPieces(gtx C, th *material.Theme, pieces []Piece) {
	thick := max(1, gtx.Dp(1))
	for _, p := range pieces {
		look := p.Look
		if look.Background.A != 0 {
			paint.FillShape(gtx.Ops, look.Background, clip.Rect(p.Bounds).Op())
		}

		lbl := material.Label(th, unit.Sp(float32(look.Size)), p.Text)
		lbl.Color = look.Foreground
		lbl.Font = look.Font
		lbl.MaxLines = 1

		// Measure first to place the label's baseline on the row's.
		tgtx := gtx
		tgtx.Constraints = layout.Constraints{Max: image.Pt(1<<20, 1<<20)}
		macro := op.Record(gtx.Ops)
		dims := lbl.Layout(tgtx)
		call := macro.Stop()

		top := p.Baseline - (dims.Size.Y - dims.Baseline)
		off := op.Offset(image.Pt(p.Bounds.Min.X, top)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()

		if look.Underline {
			y := p.Baseline + thick
			paint.FillShape(gtx.Ops, look.Foreground, clip.Rect(image.Rect(p.Bounds.Min.X, y, p.Bounds.Max.X, y+thick)).Op())
		}
		if look.Strikethrough {
			y := p.Baseline - (p.Baseline-p.Bounds.Min.Y)*3/10
			paint.FillShape(gtx.Ops, look.Foreground, clip.Rect(image.Rect(p.Bounds.Min.X, y, p.Bounds.Max.X, y+thick)).Op())
		}
	}
}

// measureLineMetrics returns the line height and baseline (distance from bottom
// to text baseline) for a single line of text in the session's base font.
func measureLineMetrics(gtx layout.Context, th *material.Theme, sess *session.Session) (height, baseline int) {
	macro := op.Record(gtx.Ops)
	lbl := material.Label(th, unit.Sp(float32(sess.Font.Size)), "0")
	lbl.Font = sess.Resolve(0).Font
	lbl.MaxLines = 1
	mgtx := gtx
	mgtx.Constraints.Min = image.Point{}
	dims := lbl.Layout(mgtx)
	macro.Stop()
	return dims.Size.Y, dims.Baseline
}
