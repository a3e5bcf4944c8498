package main

import (
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"scribe/app/session"
)

// searchBar is the "Search for:" strip shown under the toolbar. It stays
// open between searches.
type searchBar struct {
	visible   bool
	wantFocus bool
	query     widget.Editor
	search    widget.Clickable
	close     widget.Clickable
}

func newSearchBar() *searchBar {
	sb := &searchBar{}
	sb.query.SingleLine = true
	sb.query.Submit = true
	return sb
}

// Open shows the bar and focuses the query field.
func (sb *searchBar) Open() {
	sb.visible = true
	sb.wantFocus = true
}

// Update returns a search request when the user presses Search or Enter.
func (sb *searchBar) Update(gtx C) []request {
	if !sb.visible {
		return nil
	}
	if sb.wantFocus {
		gtx.Execute(key.FocusCmd{Tag: &sb.query})
		sb.wantFocus = false
	}
	if sb.close.Clicked(gtx) {
		sb.visible = false
		return nil
	}
	submit := sb.search.Clicked(gtx)
	for {
		ev, ok := sb.query.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			submit = true
		}
	}
	if !submit {
		return nil
	}
	return []request{{action: session.ActionFind, in: session.Input{Query: sb.query.Text()}, answered: true}}
}

func (sb *searchBar) Layout(gtx C, th *material.Theme) D {
	inset := layout.UniformInset(unit.Dp(4))
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, material.Body1(th, "Search for:").Layout)
		}),
		layout.Flexed(1, func(gtx C) D {
			return inset.Layout(gtx, func(gtx C) D {
				return widget.Border{Color: th.Palette.ContrastBg, Width: unit.Dp(1)}.Layout(gtx, func(gtx C) D {
					return layout.UniformInset(unit.Dp(4)).Layout(gtx, material.Editor(th, &sb.query, "text to find").Layout)
				})
			})
		}),
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, material.Button(th, &sb.search, "Search").Layout)
		}),
		layout.Rigid(func(gtx C) D {
			return inset.Layout(gtx, material.Button(th, &sb.close, "Close").Layout)
		}),
	)
}
