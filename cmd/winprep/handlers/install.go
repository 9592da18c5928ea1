// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/winprep/winprep/internal/catalog"
	"github.com/winprep/winprep/internal/elevation"
	"github.com/winprep/winprep/internal/gpu"
	"github.com/winprep/winprep/internal/orchestrate"
	"github.com/winprep/winprep/internal/picker"
	"github.com/winprep/winprep/internal/run"
	"github.com/winprep/winprep/internal/ui"
	"github.com/winprep/winprep/internal/ui/tui"
	"github.com/winprep/winprep/internal/winget"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newRunner creates the subprocess runner.
	newRunner = run.New

	// newManager creates the winget client.
	newManager = func(r run.Runner) orchestrate.PackageManager {
		return winget.New(r)
	}

	// newAdvisor creates the GPU advisor.
	newAdvisor = func(r run.Runner) gpuAdvisor {
		return gpu.NewAdvisor(r)
	}

	// checkPrerequisites verifies winget is available.
	checkPrerequisites = winget.CheckPrerequisites

	// isElevated and relaunchElevated gate the run on admin rights.
	isElevated       = elevation.IsElevated
	relaunchElevated = elevation.Relaunch

	// pickSelection presents the checkbox form.
	pickSelection = picker.Run

	// runTUI wraps the run with the progress display.
	runTUI = tui.Run

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// gpuAdvisor is the part of gpu.Advisor the handler needs.
type gpuAdvisor interface {
	Detect(ctx context.Context) gpu.Vendor
	Note(vendor gpu.Vendor, rep orchestrate.Reporter) bool
}

// InstallOptions configures the install workflow.
type InstallOptions struct {
	// All selects the whole catalog and skips the form.
	All bool

	// Plain forces line-based output instead of the TUI.
	Plain bool

	// SkipGPU skips GPU detection and the driver advisory entirely.
	SkipGPU bool
}

// Install runs the install workflow:
//
//  1. Ensures the process is elevated, relaunching itself if not.
//  2. Verifies a usable winget installation exists (fatal if missing).
//  3. Collects the selection (checkbox form or the whole catalog).
//  4. Builds the run plan and executes it strictly sequentially,
//     rendering events through the TUI or the plain reporter.
//
// Per-step failures are reported through the event stream and do not
// abort the run; Install returns an error only for fatal conditions or
// to summarize a partially failed run.
func Install(ctx context.Context, opts InstallOptions) error {
	if !isElevated() {
		log.Printf("administrator rights required, relaunching elevated...")
		if err := relaunchElevated(); err != nil {
			return fmt.Errorf("elevation denied: %w", err)
		}
		// The elevated instance takes over.
		return nil
	}

	if err := checkPrerequisites(); err != nil {
		return err
	}

	selection := catalog.Entries()
	updateAll := false
	if !opts.All {
		picked, err := pickSelection(ctx, selection)
		if err != nil {
			return fmt.Errorf("selection aborted: %w", err)
		}
		selection = catalog.Select(picked.Keys)
		updateAll = picked.UpdateAll
	}

	r := newRunner()
	manager := newManager(r)
	advisor := newAdvisor(r)

	// The vendor is resolved before the plan is built: an NVIDIA host
	// adds the driver-utility install as a counted step, while AMD and
	// Unknown hosts get an informational note after the plan completes,
	// outside the progress denominator.
	vendor := gpu.Unknown
	if !opts.SkipGPU {
		vendor = advisor.Detect(ctx)
	}
	var driver *catalog.Entry
	if vendor == gpu.NVIDIA {
		driver = &gpu.DriverUtility
	}

	plan := orchestrate.Build(selection, orchestrate.Options{
		UpdateAll: updateAll,
		Driver:    driver,
	})
	if plan.Len() == 0 {
		log.Printf("nothing selected, nothing to do")
		return nil
	}

	orch := orchestrate.New(manager)
	runPlan := func(rep orchestrate.Reporter) orchestrate.Summary {
		sum := orch.Run(ctx, plan, rep)
		if !opts.SkipGPU && advisor.Note(vendor, rep) {
			sum.Info++
		}
		return sum
	}

	var summary orchestrate.Summary
	if !opts.Plain && isInteractiveTTY() {
		var err error
		summary, err = runTUI(plan.Len(), runPlan)
		if err != nil {
			return err
		}
	} else {
		summary = runPlan(ui.NewPlainReporter(os.Stdout))
	}

	log.Printf("run complete: %d installed, %d already present, %d failed",
		summary.Succeeded, summary.AlreadyInstalled, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d steps failed", summary.Failed, plan.Len())
	}
	return nil
}
