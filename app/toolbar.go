package main

import (
	"slices"
	"strconv"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"scribe/app/config"
	"scribe/app/session"
)

// fontFamilies lists the typefaces the shaper was loaded with.
func fontFamilies() []string {
	var out []string
	for _, f := range gofont.Collection() {
		name := string(f.Font.Typeface)
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func fontSizes() []string {
	var out []string
	for s := config.MinFontSize; s <= config.MaxFontSize; s++ {
		out = append(out, strconv.Itoa(s))
	}
	return out
}

// toolbarButton binds a clickable to the action it triggers.
type toolbarButton struct {
	action session.Action
	click  widget.Clickable
}

// toolbar is the formatting row below the menu bar.
type toolbar struct {
	buttons  []*toolbarButton
	families []string
	sizes    []string
	family   *popupMenu
	size     *popupMenu
	night    widget.Bool
	spell    widget.Clickable
}

func newToolbar(th *material.Theme) *toolbar {
	tb := &toolbar{
		families: fontFamilies(),
		sizes:    fontSizes(),
	}
	for _, a := range []session.Action{
		session.ActionBold,
		session.ActionItalic,
		session.ActionUnderline,
		session.ActionStrikethrough,
		session.ActionTextColor,
		session.ActionHighlight,
	} {
		tb.buttons = append(tb.buttons, &toolbarButton{action: a})
	}
	tb.family = newPopupMenu(th, tb.families)
	tb.size = newPopupMenu(th, tb.sizes)
	return tb
}

// Update returns the actions triggered since the last frame. Either font
// selector sends both halves of the font.
func (tb *toolbar) Update(gtx C, sess *session.Session) []request {
	var reqs []request
	for _, b := range tb.buttons {
		if b.click.Clicked(gtx) {
			reqs = append(reqs, request{action: b.action})
		}
	}
	font := sess.Font
	picked := false
	if i, ok := tb.family.Update(gtx); ok {
		font.Family = tb.families[i]
		picked = true
	}
	if i, ok := tb.size.Update(gtx); ok {
		font.Size, _ = strconv.Atoi(tb.sizes[i])
		picked = true
	}
	if picked {
		reqs = append(reqs, request{action: session.ActionFont, in: session.Input{Font: font}})
	}
	if tb.night.Update(gtx) {
		reqs = append(reqs, request{action: session.ActionNightMode, in: session.Input{Night: tb.night.Value}})
	}
	if tb.spell.Clicked(gtx) {
		reqs = append(reqs, request{action: session.ActionSpellCheck})
	}
	return reqs
}

func (tb *toolbar) Layout(gtx C, th *material.Theme, sess *session.Session) D {
	inset := layout.UniformInset(unit.Dp(2))
	button := func(click *widget.Clickable, label string) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				btn := material.Button(th, click, label)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				btn.TextSize = unit.Sp(13)
				return btn.Layout(gtx)
			})
		})
	}

	var children []layout.FlexChild
	for _, b := range tb.buttons[:4] {
		children = append(children, button(&b.click, b.action.String()))
	}
	children = append(children,
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				return tb.family.Layout(gtx, th, sess.Font.Family, unit.Dp(240))
			})
		}),
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				return tb.size.Layout(gtx, th, strconv.Itoa(sess.Font.Size), unit.Dp(320))
			})
		}),
	)
	for _, b := range tb.buttons[4:] {
		children = append(children, button(&b.click, b.action.String()))
	}
	children = append(children,
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				cb := material.CheckBox(th, &tb.night, "Night Mode")
				cb.TextSize = unit.Sp(13)
				return cb.Layout(gtx)
			})
		}),
		button(&tb.spell, "Spell Check"),
		layout.Flexed(1, func(gtx C) D {
			return layout.E.Layout(gtx, func(gtx C) D {
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
					lbl := material.Body2(th, sess.StatusLine())
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				})
			})
		}),
	)
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}
