// Package tui provides the Bubble Tea progress display for install runs.
package tui

import "github.com/winprep/winprep/internal/orchestrate"

// StepEventMsg carries one orchestrator event.
type StepEventMsg struct {
	Event orchestrate.Event
}

// ProgressMsg reports completed steps out of the fixed total.
type ProgressMsg struct {
	Done  int
	Total int
}

// RunDoneMsg signals that the whole plan finished.
type RunDoneMsg struct {
	Summary orchestrate.Summary
}

// ErrMsg carries a fatal error.
type ErrMsg struct {
	Err error
}
