package main

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

const (
	dividerWidth   = unit.Dp(4)
	minGutterWidth = unit.Dp(28)
	maxGutterWidth = unit.Dp(160)
)

// gutterDivider is the drag handle on the right edge of the line number
// gutter. Width is the gutter width in pixels; zero means the default.
type gutterDivider struct {
	Width    int
	dragging bool
	startX   float32
	tag      bool
}

// width returns the current gutter width, clamped to the allowed range.
func (d *gutterDivider) width(gtx layout.Context) int {
	if d.Width == 0 {
		d.Width = gtx.Dp(gutterWidth)
	}
	d.Width = max(gtx.Dp(minGutterWidth), min(gtx.Dp(maxGutterWidth), d.Width))
	return d.Width
}

// Layout renders the handle and applies drags to Width.
func (d *gutterDivider) Layout(gtx layout.Context, c color.NRGBA) layout.Dimensions {
	height := gtx.Constraints.Max.Y
	w := d.width(gtx)

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &d.tag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			d.dragging = true
			d.startX = pe.Position.X
		case pointer.Drag:
			// The handle moves with the gutter edge, so positions are
			// relative to where it was last drawn.
			if d.dragging {
				d.Width = w + int(pe.Position.X-d.startX)
				w = d.width(gtx)
			}
		case pointer.Release, pointer.Cancel:
			d.dragging = false
		}
	}

	if d.dragging {
		c = mix(c, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}, 0x80)
	}
	size := gtx.Dp(dividerWidth)
	rect := image.Rect(0, 0, size, height)
	paint.FillShape(gtx.Ops, c, clip.Rect(image.Rect(0, 0, 1, height)).Op())

	area := clip.Rect(rect).Push(gtx.Ops)
	event.Op(gtx.Ops, &d.tag)
	pointer.CursorColResize.Add(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: image.Pt(size, height)}
}
