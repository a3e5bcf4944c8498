//go:build !(js && wasm)

package main

import "gioui.org/app"

func registerWebCallbacks(*EditorState, *app.Window) {}
