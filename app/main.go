package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"scribe/app/autosave"
	"scribe/app/config"
	"scribe/app/session"
	"scribe/app/spell"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// request is a command the UI wants to run. answered is set once the
// command's dialog, if any, has produced its input.
type request struct {
	action   session.Action
	in       session.Input
	answered bool
}

func main() {
	configPath := flag.String("config", "", "TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	dict, err := spell.Load(cfg.Dictionary, cfg.Language)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.New(session.Options{
		Font:   session.Font{Family: cfg.FontFamily, Size: cfg.FontSize},
		Dict:   dict,
		Logger: logger,
	})

	go func() {
		w := new(app.Window)
		w.Option(app.Title("scribe"), app.Size(unit.Dp(1024), unit.Dp(768)))
		if err := run(w, cfg, sess, flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// ui holds the widgets around the text surface.
type ui struct {
	menu    *menuBar
	tools   *toolbar
	search  *searchBar
	colors  *colorDialog
	message messageBox
	gutter  gutterDivider
}

func (u *ui) modal() bool {
	return u.message.visible || u.colors.visible
}

func run(w *app.Window, cfg config.Config, sess *session.Session, initialFile string) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	logger := sess.Log
	cb := &windowClipboard{host: sess.Clipboard}
	sess.Clipboard = cb

	es := NewEditorState(sess)
	registerWebCallbacks(es, w)
	expl := explorer.NewExplorer(w)
	u := &ui{
		menu:   newMenuBar(th),
		tools:  newToolbar(th),
		search: newSearchBar(),
		colors: newColorDialog(),
	}

	// Load file from command line if provided
	if initialFile != "" {
		if err := es.LoadFile(initialFile); err != nil {
			logger.Error("open failed", "path", initialFile, "err", err)
		}
	}

	var shortcutTag = new(bool)
	var openCh <-chan FileResult
	var saveCh <-chan SaveResult

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	saveRequests := autosave.Start(ctx, cfg.AutosaveInterval.Duration)

	showError := func(err error) {
		logger.Error("command failed", "err", err)
		u.message.Show("Error", err.Error())
	}

	apply := func(res session.Result) {
		if res.TextChanged {
			es.Push()
			w.Option(app.Title(es.Title()))
		}
		if res.Message != nil {
			u.message.Show(res.Message.Title, res.Message.Body)
		}
		if res.Exit {
			w.Perform(system.ActionClose)
		}
	}

	// perform runs a request, first opening its dialog when it still needs
	// an answer.
	perform := func(r request) {
		es.Pull()
		cmd, ok := session.Lookup(r.action)
		if !ok {
			return
		}
		if !r.answered {
			switch cmd.Prompt {
			case session.PromptOpenFile:
				if openCh == nil {
					openCh = OpenFileAsync(expl)
				}
				return
			case session.PromptSaveFile:
				if saveCh == nil {
					saveCh = SaveFileAsync(expl, defaultSaveName)
				}
				return
			case session.PromptColor:
				u.colors.Open(r.action, currentColor(sess, r.action))
				return
			case session.PromptQuery:
				u.search.Open()
				return
			}
		}
		res, err := sess.Dispatch(r.action, r.in)
		if r.action == session.ActionPaste && cb.deferPaste(err) {
			logger.Debug("pasting through the window clipboard")
			return
		}
		if err != nil {
			showError(err)
			return
		}
		apply(res)
	}

	// Channel-forward pattern for explorer compatibility
	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	w.Option(app.Title(es.Title()))

	var ops op.Ops
	for {
		select {
		case <-saveRequests:
			// Autosave runs the same flow as File ▸ Save.
			logger.Debug("autosave")
			perform(request{action: session.ActionSave})
			w.Invalidate()

		case result := <-openCh:
			openCh = nil
			switch {
			case errors.Is(result.Err, explorer.ErrUserDecline):
			case result.Err != nil:
				showError(fmt.Errorf("open: %w", result.Err))
			default:
				perform(request{action: session.ActionOpen, in: session.Input{Reader: bytes.NewReader(result.Data)}, answered: true})
			}
			w.Invalidate()

		case result := <-saveCh:
			saveCh = nil
			switch {
			case errors.Is(result.Err, explorer.ErrUserDecline):
			case result.Err != nil:
				showError(fmt.Errorf("save: %w", result.Err))
			default:
				es.Pull()
				_, err := sess.Dispatch(session.ActionSave, session.Input{Writer: result.W})
				if closeErr := result.W.Close(); err == nil {
					err = closeErr
				}
				if err != nil {
					showError(err)
				} else {
					es.Dirty = false
					w.Option(app.Title(es.Title()))
				}
			}
			w.Invalidate()

		case e := <-events:
			expl.ListenEvents(e)
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				return e.Err
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				th.TextSize = unit.Sp(float32(sess.Font.Size))

				// Everything under a modal dialog ignores input.
				under := gtx
				if u.modal() {
					under = gtx.Disabled()
				}

				var reqs []request
				reqs = append(reqs, shortcuts(under, shortcutTag, es)...)
				reqs = append(reqs, u.menu.Update(under)...)
				reqs = append(reqs, u.tools.Update(under, sess)...)
				reqs = append(reqs, u.search.Update(under)...)
				reqs = append(reqs, u.colors.Update(gtx)...)
				u.message.Update(gtx)
				for _, r := range reqs {
					perform(r)
				}
				cb.flush(gtx, &es.Editor)

				// Process editor events
				for {
					ev, ok := es.Editor.Update(under)
					if !ok {
						break
					}
					if _, ok := ev.(widget.ChangeEvent); ok {
						if es.Pull() {
							w.Option(app.Title(es.Title()))
						}
					}
				}
				es.PullSelection()

				layoutFrame(under, th, es, u)
				if u.message.visible {
					u.message.Layout(gtx, th)
				} else if u.colors.visible {
					u.colors.Layout(gtx, th)
				}

				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

// shortcuts turns keyboard shortcuts into requests.
func shortcuts(gtx C, tag *bool, es *EditorState) []request {
	event.Op(gtx.Ops, tag)
	var reqs []request
	for {
		ev, ok := gtx.Event(
			key.Filter{Required: key.ModShortcut, Name: "N"},
			key.Filter{Required: key.ModShortcut, Name: "O"},
			key.Filter{Required: key.ModShortcut, Name: "S"},
			key.Filter{Required: key.ModShortcut, Name: "F"},
			key.Filter{Required: key.ModShortcut, Name: "B"},
			key.Filter{Required: key.ModShortcut, Name: "I"},
			key.Filter{Required: key.ModShortcut, Name: "U"},
			key.Filter{Required: key.ModShortcut, Name: "="},
			key.Filter{Required: key.ModShortcut, Name: "-"},
			key.Filter{Required: key.ModShortcut, Name: "A"},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case "N":
			reqs = append(reqs, request{action: session.ActionNew})
		case "O":
			reqs = append(reqs, request{action: session.ActionOpen})
		case "S":
			reqs = append(reqs, request{action: session.ActionSave})
		case "F":
			reqs = append(reqs, request{action: session.ActionFind})
		case "B":
			reqs = append(reqs, request{action: session.ActionBold})
		case "I":
			reqs = append(reqs, request{action: session.ActionItalic})
		case "U":
			reqs = append(reqs, request{action: session.ActionUnderline})
		case "=": // Cmd+= (Cmd+Plus)
			reqs = append(reqs, resize(es.Sess.Font, 2))
		case "-": // Cmd+-
			reqs = append(reqs, resize(es.Sess.Font, -2))
		case "A": // Cmd+A / Ctrl+A: select all
			es.Editor.SetCaret(es.Editor.Len(), 0)
		}
	}
	return reqs
}

func resize(f session.Font, delta int) request {
	f.Size = max(config.MinFontSize, min(config.MaxFontSize, f.Size+delta))
	return request{action: session.ActionFont, in: session.Input{Font: f}}
}

func layoutFrame(gtx C, th *material.Theme, es *EditorState, u *ui) D {
	theme := es.Sess.Theme()

	// Fill background
	paint.FillShape(gtx.Ops, theme.Background, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

	bars := *th
	bars.Palette.Bg = mix(theme.Background, theme.Foreground, 0x0C)
	bars.Palette.Fg = theme.Foreground
	bars.TextSize = unit.Sp(14)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return u.menu.Layout(gtx, &bars)
		}),
		layout.Rigid(func(gtx C) D {
			return u.tools.Layout(gtx, &bars, es.Sess)
		}),
		layout.Rigid(func(gtx C) D {
			if !u.search.visible {
				return D{}
			}
			return u.search.Layout(gtx, &bars)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layoutSurface(gtx, th, es, &u.gutter)
		}),
	)
}
