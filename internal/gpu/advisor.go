package gpu

import (
	"context"

	"github.com/winprep/winprep/internal/browser"
	"github.com/winprep/winprep/internal/catalog"
	"github.com/winprep/winprep/internal/orchestrate"
	"github.com/winprep/winprep/internal/run"
)

// DriverUtility is the vendor driver utility installed on NVIDIA hosts.
// It enters the run plan as a counted install step, so AlreadyInstalled,
// Succeeded and Failed apply to it exactly as to a catalog selection.
var DriverUtility = catalog.Entry{
	Key:         "geforce-experience",
	PackageID:   "Nvidia.GeForceExperience",
	DisplayName: "NVIDIA GeForce Experience",
}

// AMDSupportURL is the manual driver-support page opened on AMD hosts.
const AMDSupportURL = "https://www.amd.com/en/support"

// Advisor decides what, if anything, to do about the host GPU.
//
// The vendor is detected before the run plan is built. NVIDIA adds a
// DriverUtility install step to the plan; AMD and Unknown hosts instead
// get an informational note after the plan completes, outside the
// progress count. The AMD note also opens the vendor support page.
type Advisor struct {
	// adapters and openURL are swappable for tests.
	adapters func(ctx context.Context) ([]string, error)
	openURL  func(url string) error
}

// NewAdvisor creates an Advisor that enumerates adapters through r.
func NewAdvisor(r run.Runner) *Advisor {
	return &Advisor{
		adapters: func(ctx context.Context) ([]string, error) {
			return Adapters(ctx, r)
		},
		openURL: browser.Open,
	}
}

// Detect enumerates display adapters and classifies the vendor. An
// indeterminate host query reports Unknown, the same conservative
// default the install prober uses.
func (a *Advisor) Detect(ctx context.Context) Vendor {
	adapters, err := a.adapters(ctx)
	if err != nil {
		return Unknown
	}
	return DetectVendor(adapters)
}

// Note emits the informational advisory for vendors that get no plan
// step and reports whether an event was emitted. It must be called
// after the plan has run; the event carries no progress update.
func (a *Advisor) Note(vendor Vendor, rep orchestrate.Reporter) bool {
	step := orchestrate.Step{Kind: orchestrate.StepGPUAdvisory}

	switch vendor {
	case NVIDIA:
		// Covered by the DriverUtility plan step.
		return false
	case AMD:
		message := "AMD GPU detected; opened " + AMDSupportURL
		if err := a.openURL(AMDSupportURL); err != nil {
			message = "AMD GPU detected; get drivers manually from " + AMDSupportURL
		}
		rep.Event(orchestrate.Event{Kind: orchestrate.EventInfo, Step: step, Message: message})
		return true
	default:
		rep.Event(orchestrate.Event{
			Kind:    orchestrate.EventInfo,
			Step:    step,
			Message: "no supported GPU detected, no action taken",
		})
		return true
	}
}
