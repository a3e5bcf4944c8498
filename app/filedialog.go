package main

import (
	"io"

	"gioui.org/x/explorer"
)

// defaultSaveName is suggested by the save dialog.
const defaultSaveName = "untitled.txt"

// FileResult holds the result of a file open operation.
type FileResult struct {
	Data []byte
	Err  error
}

// SaveResult holds the destination picked in a save dialog. The caller
// writes the document into W on the UI goroutine and closes it.
type SaveResult struct {
	W   io.WriteCloser
	Err error
}

// OpenFileAsync triggers a file-open dialog in a goroutine.
// The result is sent on the returned channel.
func OpenFileAsync(expl *explorer.Explorer) <-chan FileResult {
	ch := make(chan FileResult, 1)
	go func() {
		file, err := expl.ChooseFile()
		if err != nil {
			ch <- FileResult{Err: err}
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		ch <- FileResult{Data: data, Err: err}
	}()
	return ch
}

// SaveFileAsync triggers a save-as dialog in a goroutine.
// The chosen destination is sent on the returned channel.
func SaveFileAsync(expl *explorer.Explorer, defaultName string) <-chan SaveResult {
	ch := make(chan SaveResult, 1)
	go func() {
		w, err := expl.CreateFile(defaultName)
		ch <- SaveResult{W: w, Err: err}
	}()
	return ch
}
