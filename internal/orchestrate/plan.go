package orchestrate

import "github.com/winprep/winprep/internal/catalog"

// Options controls which synthetic steps a plan carries.
type Options struct {
	// UpdateAll appends a bulk-upgrade step after the installs.
	UpdateAll bool

	// Driver, when set, appends a driver-utility install as the final
	// step. It runs through the same probe-then-install path as any
	// selection entry and counts toward the progress denominator.
	// Vendors that get an informational note instead never enter the
	// plan; their note is emitted after the run, outside the count.
	Driver *catalog.Entry
}

// Plan is the ordered, length-fixed sequence of steps for one run.
// Its length fixes the progress denominator before any step executes.
// A plan is built once, consumed linearly, and discarded.
type Plan struct {
	Steps []Step
}

// Len returns the number of steps, the progress denominator.
func (p Plan) Len() int {
	return len(p.Steps)
}

// Build derives a plan from the selected catalog entries. Installs keep
// the given order; the update-all step, when requested, always comes
// after every install and before the driver install.
func Build(selection []catalog.Entry, opts Options) Plan {
	steps := make([]Step, 0, len(selection)+2)

	for _, e := range selection {
		steps = append(steps, Step{Kind: StepInstall, Entry: e})
	}
	if opts.UpdateAll {
		steps = append(steps, Step{Kind: StepUpdateAll})
	}
	if opts.Driver != nil {
		steps = append(steps, Step{Kind: StepDriverInstall, Entry: *opts.Driver})
	}

	return Plan{Steps: steps}
}
