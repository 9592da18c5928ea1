// Package orchestrate executes a run plan strictly sequentially: probe,
// conditionally install, record the outcome, advance the progress
// percentage. Failures are per-step and never abort the plan.
package orchestrate

import "context"

// PackageManager is the winget surface the orchestrator needs.
// Implemented by winget.Client.
type PackageManager interface {
	// IsInstalled reports whether the exact package identifier is
	// already present. Indeterminate probes report false.
	IsInstalled(ctx context.Context, packageID string) bool

	// Install runs a silent install and returns the exit code. The
	// error is non-nil only when no exit code was produced.
	Install(ctx context.Context, packageID string) (int, error)

	// UpgradeAll runs the bulk upgrade and returns the exit code.
	UpgradeAll(ctx context.Context) (int, error)
}

// Summary counts terminal outcomes of one run. Info counts advisory
// notes emitted after the plan; they are not plan steps.
type Summary struct {
	Succeeded        int
	AlreadyInstalled int
	Failed           int
	Info             int
}

// Orchestrator runs plans against a package manager.
type Orchestrator struct {
	manager PackageManager
}

// New creates an Orchestrator.
func New(manager PackageManager) *Orchestrator {
	return &Orchestrator{manager: manager}
}

// Run executes the plan in order. Each step emits exactly one Started
// event followed by exactly one terminal event, then a progress update.
// There is no parallelism: each subprocess blocks the run until it
// exits, and a step's failure only affects that step.
func (o *Orchestrator) Run(ctx context.Context, plan Plan, rep Reporter) Summary {
	var sum Summary
	total := plan.Len()

	for i, step := range plan.Steps {
		rep.Event(Event{Kind: EventStarted, Step: step})

		ev := o.runStep(ctx, step)
		rep.Event(ev)
		rep.Progress(i+1, total)

		switch ev.Kind {
		case EventSucceeded:
			sum.Succeeded++
		case EventAlreadyInstalled:
			sum.AlreadyInstalled++
		case EventFailed:
			sum.Failed++
		}
	}

	return sum
}

func (o *Orchestrator) runStep(ctx context.Context, step Step) Event {
	switch step.Kind {
	case StepUpdateAll:
		code, err := o.manager.UpgradeAll(ctx)
		return exitEvent(step, code, err)
	default:
		// StepInstall and StepDriverInstall probe then install.
		return o.runInstall(ctx, step)
	}
}

func (o *Orchestrator) runInstall(ctx context.Context, step Step) Event {
	if o.manager.IsInstalled(ctx, step.Entry.PackageID) {
		return Event{Kind: EventAlreadyInstalled, Step: step}
	}
	code, err := o.manager.Install(ctx, step.Entry.PackageID)
	return exitEvent(step, code, err)
}

// exitEvent converts a subprocess result into a terminal event.
func exitEvent(step Step, code int, err error) Event {
	if err != nil {
		return Event{Kind: EventFailed, Step: step, ExitCode: -1, Message: err.Error()}
	}
	if code != 0 {
		return Event{Kind: EventFailed, Step: step, ExitCode: code}
	}
	return Event{Kind: EventSucceeded, Step: step}
}
