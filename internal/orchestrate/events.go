package orchestrate

import (
	"fmt"

	"github.com/winprep/winprep/internal/catalog"
)

// EventKind classifies a step event.
type EventKind string

const (
	// EventStarted is emitted when a step begins.
	EventStarted EventKind = "started"
	// EventAlreadyInstalled is emitted when the probe finds the package
	// present; it is the terminal outcome for that step.
	EventAlreadyInstalled EventKind = "already-installed"
	// EventSucceeded is emitted when the step's subprocess exits zero.
	EventSucceeded EventKind = "succeeded"
	// EventFailed is emitted on a nonzero exit or an invocation error.
	// It never aborts the plan.
	EventFailed EventKind = "failed"
	// EventInfo is an informational event emitted by the GPU advisory
	// when no install is attempted. It is produced outside the counted
	// plan and never moves the progress percentage.
	EventInfo EventKind = "info"
)

// StepKind identifies what a plan step does.
type StepKind string

const (
	// StepInstall installs one catalog entry.
	StepInstall StepKind = "install"
	// StepUpdateAll runs the bulk winget upgrade.
	StepUpdateAll StepKind = "update-all"
	// StepDriverInstall installs the vendor driver utility. It executes
	// exactly like StepInstall and exists only so displays can tell the
	// synthetic step apart from a catalog selection.
	StepDriverInstall StepKind = "gpu-driver"
	// StepGPUAdvisory labels the informational advisory events emitted
	// outside the plan; it never appears as a plan step.
	StepGPUAdvisory StepKind = "gpu-advisory"
)

// Step is one unit of work in a run plan.
type Step struct {
	Kind StepKind

	// Entry is set for StepInstall and StepDriverInstall.
	Entry catalog.Entry
}

// Label returns the human-readable name of the step.
func (s Step) Label() string {
	switch s.Kind {
	case StepUpdateAll:
		return "Update all packages"
	case StepGPUAdvisory:
		return "GPU driver advisory"
	default:
		return s.Entry.DisplayName
	}
}

// Event is produced by the orchestrator and consumed by a Reporter.
// Events are not persisted; they exist only for the duration of a run.
type Event struct {
	Kind EventKind
	Step Step

	// ExitCode carries the subprocess exit code for EventFailed when
	// one exists; -1 means the subprocess never produced one.
	ExitCode int

	// Message carries an invocation error or advisory text.
	Message string
}

// String renders the event for plain-text sinks.
func (e Event) String() string {
	label := e.Step.Label()
	switch e.Kind {
	case EventStarted:
		return label
	case EventAlreadyInstalled:
		return label + " (already installed)"
	case EventSucceeded:
		return label
	case EventFailed:
		if e.Message != "" {
			return fmt.Sprintf("%s (%s)", label, e.Message)
		}
		return fmt.Sprintf("%s (exit code %d)", label, e.ExitCode)
	case EventInfo:
		return fmt.Sprintf("%s: %s", label, e.Message)
	}
	return label
}

// Reporter receives step events and progress updates in program order.
// Implementations must not drop, coalesce, or reorder events.
type Reporter interface {
	// Event renders one step event.
	Event(ev Event)

	// Progress reports that done of total steps have completed.
	Progress(done, total int)
}
