// Package console prints the human-facing diagnostic lines of the listener.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console writes unstructured, optionally coloured, lines to an output.
type Console struct {
	out    io.Writer
	label  *color.Color
	banner *color.Color
}

// New returns a Console writing to out. Colours are only emitted when colored is set and
// the terminal supports them.
func New(out io.Writer, colored bool) *Console {
	c := &Console{
		out:    out,
		label:  color.New(color.FgGreen, color.Bold),
		banner: color.New(color.FgCyan),
	}
	if !colored {
		c.label.DisableColor()
		c.banner.DisableColor()
	}
	return c
}

// Opening announces the URL about to be handed to the browser.
func (c *Console) Opening(url string) {
	_, _ = fmt.Fprintf(c.out, "%s %s\n", c.label.Sprint("Opening:"), url)
}

// Serving announces the address the listener is bound to.
func (c *Console) Serving(addr string) {
	_, _ = fmt.Fprintln(c.out, c.banner.Sprintf("QR Redirect Server running on http://%s", addr))
}
