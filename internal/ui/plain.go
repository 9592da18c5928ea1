// Package ui renders the install run's event stream: a plain line
// writer for non-interactive output and a Bubble Tea TUI in the tui
// subpackage.
package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/winprep/winprep/internal/orchestrate"
)

// Step markers, matching the TUI's vocabulary.
const (
	markPending = "[..]"
	markOK      = "[OK]"
	markFail    = "[!!]"
	markInfo    = "[ii]"
)

// PlainReporter writes one line per event plus a percentage line after
// each completed step. Events are written in the order they arrive.
type PlainReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPlainReporter creates a reporter writing to w.
func NewPlainReporter(w io.Writer) *PlainReporter {
	return &PlainReporter{w: w}
}

// Event implements orchestrate.Reporter.
func (r *PlainReporter) Event(ev orchestrate.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Kind {
	case orchestrate.EventStarted:
		fmt.Fprintf(r.w, "%s %s\n", markPending, ev.String())
	case orchestrate.EventAlreadyInstalled, orchestrate.EventSucceeded:
		fmt.Fprintf(r.w, "%s %s\n", markOK, ev.String())
	case orchestrate.EventFailed:
		fmt.Fprintf(r.w, "%s %s\n", markFail, ev.String())
	case orchestrate.EventInfo:
		fmt.Fprintf(r.w, "%s %s\n", markInfo, ev.String())
	}
}

// Progress implements orchestrate.Reporter.
func (r *PlainReporter) Progress(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pct := float64(done) / float64(total) * 100
	fmt.Fprintf(r.w, "progress: %d/%d (%.0f%%)\n", done, total, pct)
}
