package main

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"scribe/app/session"
)

// popupMenu is a button that drops a list of options below itself.
type popupMenu struct {
	btn    widget.Clickable
	open   bool
	labels []string
	clicks []widget.Clickable
	state  component.MenuState
}

func newPopupMenu(th *material.Theme, labels []string) *popupMenu {
	m := &popupMenu{
		labels: labels,
		clicks: make([]widget.Clickable, len(labels)),
	}
	for i := range labels {
		m.state.Options = append(m.state.Options, func(gtx C) D {
			return component.MenuItem(th, &m.clicks[i], m.labels[i]).Layout(gtx)
		})
	}
	return m
}

// Update returns the option picked since the last frame, if any.
func (m *popupMenu) Update(gtx C) (int, bool) {
	if m.btn.Clicked(gtx) {
		m.open = !m.open
	}
	for i := range m.clicks {
		if m.clicks[i].Clicked(gtx) {
			m.open = false
			return i, true
		}
	}
	return 0, false
}

// Layout draws the button and, while open, the option list on top of
// everything drawn later in the frame.
func (m *popupMenu) Layout(gtx C, th *material.Theme, label string, maxHeight unit.Dp) D {
	btn := material.Button(th, &m.btn, label)
	btn.Inset = layout.UniformInset(unit.Dp(6))
	btn.TextSize = unit.Sp(13)
	dims := btn.Layout(gtx)
	if m.open {
		macro := op.Record(gtx.Ops)
		op.Offset(image.Pt(0, dims.Size.Y)).Add(gtx.Ops)
		mgtx := gtx
		mgtx.Constraints.Min = image.Point{}
		mgtx.Constraints.Max.Y = gtx.Dp(maxHeight)
		mgtx.Constraints.Max.X = gtx.Dp(unit.Dp(240))
		component.Menu(th, &m.state).Layout(mgtx)
		op.Defer(gtx.Ops, macro.Stop())
	}
	return dims
}

// menuGroup is one top-level entry of the menu bar.
type menuGroup struct {
	label   string
	actions []session.Action
	popup   *popupMenu
}

// menuBar holds the File and Edit menus.
type menuBar struct {
	groups []*menuGroup
}

func newMenuBar(th *material.Theme) *menuBar {
	mb := &menuBar{}
	add := func(label string, actions ...session.Action) {
		labels := make([]string, len(actions))
		for i, a := range actions {
			labels[i] = a.String()
		}
		mb.groups = append(mb.groups, &menuGroup{
			label:   label,
			actions: actions,
			popup:   newPopupMenu(th, labels),
		})
	}
	add("File", session.ActionNew, session.ActionOpen, session.ActionSave, session.ActionExit)
	add("Edit", session.ActionCut, session.ActionCopy, session.ActionPaste, session.ActionFind)
	return mb
}

// Update returns the actions picked since the last frame.
func (mb *menuBar) Update(gtx C) []request {
	var reqs []request
	for _, g := range mb.groups {
		if i, ok := g.popup.Update(gtx); ok {
			reqs = append(reqs, request{action: g.actions[i]})
		}
	}
	return reqs
}

func (mb *menuBar) Layout(gtx C, th *material.Theme) D {
	children := make([]layout.FlexChild, 0, len(mb.groups))
	for _, g := range mb.groups {
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
				return g.popup.Layout(gtx, th, g.label, unit.Dp(200))
			})
		}))
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}
