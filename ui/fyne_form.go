package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// entryForm is a Form captured from fyne entries at submit time, so the
// handler never touches widgets from its own goroutine.
type entryForm struct {
	values map[string]string
	button *widget.Button
	onMain func(func())
}

func snapshotForm(entries map[string]*widget.Entry, button *widget.Button, onMain func(func())) *entryForm {
	values := make(map[string]string, len(entries))
	for id, entry := range entries {
		values[id] = entry.Text
	}
	return &entryForm{values: values, button: button, onMain: onMain}
}

func (f *entryForm) Value(id string) string { return f.values[id] }

func (f *entryForm) SetSubmitting(submitting bool) {
	f.onMain(func() {
		if submitting {
			f.button.Disable()
		} else {
			f.button.Enable()
		}
	})
}

// windowRunner decides where handler work and widget updates run.
type windowRunner struct {
	runAsync func(func())
	onMain   func(func())
}

func defaultRunner() windowRunner {
	return windowRunner{
		runAsync: func(f func()) { go f() },
		onMain:   fyne.Do,
	}
}
