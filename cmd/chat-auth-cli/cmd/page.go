package cmd

import (
	"fmt"
	"io"
)

// flagForm serves field values collected from command-line flags.
type flagForm map[string]string

func (f flagForm) Value(id string) string { return f[id] }

// SetSubmitting is a no-op; a command submits exactly once.
func (flagForm) SetSubmitting(bool) {}

// consolePage prints status text and records what the handler did.
type consolePage struct {
	out       io.Writer
	last      string
	navigated string
}

func (p *consolePage) SetText(_, text string) {
	p.last = text
	fmt.Fprintln(p.out, text)
}

func (p *consolePage) Navigate(path string) {
	p.navigated = path
	fmt.Fprintf(p.out, "Continue at %s\n", path)
}
