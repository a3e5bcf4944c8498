//go:build js && wasm

package main

import (
	"syscall/js"
	"unicode/utf8"

	"scribe/app/doc"
	"scribe/app/spell"
)

var (
	document = doc.New()
	dict     *spell.WordList
)

func main() {
	var err error
	dict, err = spell.Default(spell.DefaultLanguage)
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
	}

	// Register countText: returns {words, chars} for the given text
	js.Global().Set("countText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		st := doc.Count(args[0].String())
		obj := js.Global().Get("Object").New()
		obj.Set("words", st.Words)
		obj.Set("chars", st.Chars)
		obj.Set("label", st.String())
		return obj
	}))

	// Register searchText: returns [{start, end}] rune offsets of query in the editor text
	js.Global().Set("searchText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		spans := document.Search(args[0].String())
		arr := js.Global().Get("Array").New(len(spans))
		for i, sp := range spans {
			obj := js.Global().Get("Object").New()
			obj.Set("start", sp.Start)
			obj.Set("end", sp.End)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	// Register spellCheck: returns the report shown by the desktop app
	js.Global().Set("spellCheck", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if dict == nil {
			return "No dictionary loaded."
		}
		return spell.Report(spell.Misspelled(dict, document.Text()))
	}))

	// Register getEditorText for share link
	js.Global().Set("getEditorText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return document.Text()
	}))

	// Register setEditorText for share link restore and textarea input.
	// An optional second argument is the textarea's caret.
	js.Global().Set("setEditorText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			text := args[0].String()
			caret := utf8.RuneCountInString(text)
			if len(args) > 1 && args[1].Type() == js.TypeNumber {
				caret = args[1].Int()
			}
			document.Sync(text, caret)
			// Update textarea via JS callback
			ta := js.Global().Get("document").Call("getElementById", "editor")
			if !ta.IsUndefined() && !ta.IsNull() && ta.Get("value").String() != document.Text() {
				ta.Set("value", document.Text())
				ta.Call("dispatchEvent", js.Global().Get("Event").New("input"))
			}
		}
		return nil
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}
