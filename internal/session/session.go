// Package session drives the interactive recolor loop: read one line,
// normalize it, resolve it against the palette, report the result and
// copy it to the clipboard.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vividmap/recolor/internal/clipboard"
	"github.com/vividmap/recolor/internal/palette"
)

// Prompt is shown before every read. Kept byte-for-byte for users of
// the original tool: "enter hex (no '#', empty to finish): ".
const Prompt = "hex入力(#なし、空で終了): "

// MissNotice is printed when the input has no mapping:
// "no conversion target."
const MissNotice = "変換先なし。"

// Recorder receives every successful conversion. The history store
// implements it; a nil Recorder disables recording.
type Recorder interface {
	Record(muted, vivid string) error
}

// Config wires a Session to its collaborators. In and Out are explicit
// so the loop runs against scripted input and captured output in tests
// exactly as it runs against a terminal.
type Config struct {
	// In is the line-oriented input source, one candidate code per line.
	In io.Reader

	// Out receives the prompt, resolved codes and miss notices.
	Out io.Writer

	// Resolver is the lookup table.
	Resolver palette.Resolver

	// Clipboard receives every resolved vivid code.
	Clipboard clipboard.Writer

	// History, when non-nil, records successful conversions.
	History Recorder

	// Logger reports clipboard and history failures. Defaults to a
	// discarding logger; the fixed prompt/result strings never go
	// through it.
	Logger *log.Logger
}

// Session is the interactive recolor loop. One session owns its input
// stream for its whole lifetime; there is no concurrent use.
type Session struct {
	in       io.Reader
	out      io.Writer
	resolver palette.Resolver
	clip     clipboard.Writer
	history  Recorder
	logger   *log.Logger
}

// New creates a session from the given wiring.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		in:       cfg.In,
		out:      cfg.Out,
		resolver: cfg.Resolver,
		clip:     cfg.Clipboard,
		history:  cfg.History,
		logger:   logger,
	}
}

// Run executes the loop until the user submits an empty line, the
// input stream ends, or ctx is cancelled. Cancellation is observed at
// the prompt boundary; an in-flight clipboard write always runs to
// completion, so the printed value and the clipboard stay in sync.
//
// Unrecognized input is never fatal: any string that is not a table
// key produces the miss notice and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	// bufio.Reader instead of a Scanner: a Scanner caps the line length
	// and turns an oversized line into a fatal error, but any input,
	// however long, may only ever produce a miss.
	reader := bufio.NewReader(s.in)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(s.out, Prompt)

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			// A broken stream is still a termination, just a reported one.
			return fmt.Errorf("session: reading input: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			return nil
		}

		// Termination is decided on the whitespace-trimmed line, before
		// any '#' stripping: a lone "#" trims to a non-empty string,
		// normalizes to "" and is looked up as a miss.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil
		}

		code := palette.Normalize(trimmed)

		vivid, ok := s.resolver.Resolve(code)
		if !ok {
			fmt.Fprintln(s.out, MissNotice)
			continue
		}

		fmt.Fprintln(s.out, vivid)

		// Awaited before the next prompt; the next read never starts
		// while a write is outstanding.
		if err := s.clip.WriteText(vivid); err != nil {
			// The resolved value is already on stdout.
			s.logger.Warn("clipboard write failed", "error", err)
		}

		if s.history != nil {
			if err := s.history.Record(code, vivid); err != nil {
				s.logger.Warn("could not record conversion", "error", err)
			}
		}
	}
}
