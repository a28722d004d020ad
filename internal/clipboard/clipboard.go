// Package clipboard abstracts the write-only clipboard sink used to
// hand resolved colors to other applications. The system clipboard is
// unavailable in some environments (no display, locked-down session),
// so writers report failure instead of guaranteeing delivery.
package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer places text on a clipboard. Implementations may fail; callers
// decide whether the failure matters.
type Writer interface {
	// WriteText replaces the clipboard's current text content.
	WriteText(text string) error
}

// System writes to the local operating system clipboard.
type System struct{}

// NewSystem returns a writer backed by the OS clipboard.
func NewSystem() System {
	return System{}
}

// WriteText copies text to the OS clipboard.
func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: system write failed: %w", err)
	}
	return nil
}

// OSC52 writes to the clipboard of the terminal at the far end of an
// output stream using the OSC 52 escape sequence. This is the only way
// to reach a remote user's clipboard from an SSH session.
type OSC52 struct {
	out io.Writer
}

// NewOSC52 returns a writer that emits OSC 52 sequences to out,
// typically an SSH session.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out}
}

// WriteText copies text to the remote terminal's clipboard.
func (w *OSC52) WriteText(text string) error {
	if _, err := osc52.New(text).WriteTo(w.out); err != nil {
		return fmt.Errorf("clipboard: osc52 write failed: %w", err)
	}
	return nil
}

// Ensure both writers implement Writer
var (
	_ Writer = System{}
	_ Writer = (*OSC52)(nil)
)
