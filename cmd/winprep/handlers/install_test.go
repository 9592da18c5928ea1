package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winprep/winprep/internal/catalog"
	"github.com/winprep/winprep/internal/gpu"
	"github.com/winprep/winprep/internal/orchestrate"
	"github.com/winprep/winprep/internal/picker"
	"github.com/winprep/winprep/internal/run"
)

type fakeManager struct {
	installed map[string]bool
	exitCode  int

	installedIDs []string
	upgrades     int
}

func (f *fakeManager) IsInstalled(_ context.Context, packageID string) bool {
	return f.installed[packageID]
}

func (f *fakeManager) Install(_ context.Context, packageID string) (int, error) {
	f.installedIDs = append(f.installedIDs, packageID)
	return f.exitCode, nil
}

func (f *fakeManager) UpgradeAll(_ context.Context) (int, error) {
	f.upgrades++
	return 0, nil
}

type fakeAdvisor struct {
	vendor gpu.Vendor

	detects int
	notes   int
}

func (f *fakeAdvisor) Detect(_ context.Context) gpu.Vendor {
	f.detects++
	return f.vendor
}

func (f *fakeAdvisor) Note(vendor gpu.Vendor, rep orchestrate.Reporter) bool {
	if vendor == gpu.NVIDIA {
		return false
	}
	f.notes++
	rep.Event(orchestrate.Event{
		Kind:    orchestrate.EventInfo,
		Step:    orchestrate.Step{Kind: orchestrate.StepGPUAdvisory},
		Message: "no action",
	})
	return true
}

// installTestEnv swaps the handler's collaborators for fakes and
// restores them when the test ends.
type installTestEnv struct {
	manager *fakeManager
	advisor *fakeAdvisor

	picked     *picker.Result
	pickerErr  error
	pickCalled bool
}

func setupInstallTest(t *testing.T) *installTestEnv {
	t.Helper()

	env := &installTestEnv{
		manager: &fakeManager{installed: map[string]bool{}},
		advisor: &fakeAdvisor{vendor: gpu.Unknown},
		picked:  &picker.Result{},
	}

	origManager := newManager
	origAdvisor := newAdvisor
	origPrereq := checkPrerequisites
	origElevated := isElevated
	origRelaunch := relaunchElevated
	origPick := pickSelection
	origTTY := isInteractiveTTY

	newManager = func(run.Runner) orchestrate.PackageManager { return env.manager }
	newAdvisor = func(run.Runner) gpuAdvisor { return env.advisor }
	checkPrerequisites = func() error { return nil }
	isElevated = func() bool { return true }
	relaunchElevated = func() error { return nil }
	pickSelection = func(_ context.Context, _ []catalog.Entry) (*picker.Result, error) {
		env.pickCalled = true
		return env.picked, env.pickerErr
	}
	isInteractiveTTY = func() bool { return false }

	t.Cleanup(func() {
		newManager = origManager
		newAdvisor = origAdvisor
		checkPrerequisites = origPrereq
		isElevated = origElevated
		relaunchElevated = origRelaunch
		pickSelection = origPick
		isInteractiveTTY = origTTY
	})

	return env
}

func TestInstall_RunsSelectedPlan(t *testing.T) {
	env := setupInstallTest(t)
	env.picked = &picker.Result{Keys: []string{"chrome", "steam"}}

	err := Install(context.Background(), InstallOptions{Plain: true, SkipGPU: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Google.Chrome", "Valve.Steam"}, env.manager.installedIDs)
	assert.Zero(t, env.manager.upgrades)
	assert.Zero(t, env.advisor.detects, "--skip-gpu must suppress detection")
	assert.Zero(t, env.advisor.notes)
}

func TestInstall_UpdateAllAndAdvisoryNote(t *testing.T) {
	env := setupInstallTest(t)
	env.picked = &picker.Result{Keys: []string{"chrome"}, UpdateAll: true}

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Google.Chrome"}, env.manager.installedIDs)
	assert.Equal(t, 1, env.manager.upgrades)
	assert.Equal(t, 1, env.advisor.detects)
	assert.Equal(t, 1, env.advisor.notes)
}

func TestInstall_NVIDIAAddsDriverStep(t *testing.T) {
	env := setupInstallTest(t)
	env.advisor.vendor = gpu.NVIDIA
	env.picked = &picker.Result{Keys: []string{"chrome"}}

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"Google.Chrome", gpu.DriverUtility.PackageID}, env.manager.installedIDs)
	assert.Zero(t, env.advisor.notes, "the driver plan step replaces the note on NVIDIA hosts")
}

func TestInstall_AllSkipsPicker(t *testing.T) {
	env := setupInstallTest(t)

	err := Install(context.Background(), InstallOptions{All: true, Plain: true, SkipGPU: true})
	require.NoError(t, err)

	assert.False(t, env.pickCalled)
	assert.Len(t, env.manager.installedIDs, len(catalog.Entries()))
}

func TestInstall_EmptySelectionIsNoop(t *testing.T) {
	env := setupInstallTest(t)
	env.picked = &picker.Result{}

	err := Install(context.Background(), InstallOptions{Plain: true, SkipGPU: true})
	require.NoError(t, err)

	assert.Empty(t, env.manager.installedIDs)
}

func TestInstall_FailedStepsSurfaceInError(t *testing.T) {
	env := setupInstallTest(t)
	env.picked = &picker.Result{Keys: []string{"chrome"}}
	env.manager.exitCode = 1

	err := Install(context.Background(), InstallOptions{Plain: true, SkipGPU: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 steps failed")
}

func TestInstall_PrerequisiteMissingIsFatal(t *testing.T) {
	env := setupInstallTest(t)
	checkPrerequisites = func() error { return errors.New("no usable winget installation found") }

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "winget")
	assert.Empty(t, env.manager.installedIDs, "no step may execute without the package manager")
}

func TestInstall_NotElevatedRelaunches(t *testing.T) {
	env := setupInstallTest(t)
	isElevated = func() bool { return false }

	relaunched := false
	relaunchElevated = func() error {
		relaunched = true
		return nil
	}

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.NoError(t, err)

	assert.True(t, relaunched)
	assert.Empty(t, env.manager.installedIDs, "unprivileged instance must not run the plan")
}

func TestInstall_ElevationDeniedIsFatal(t *testing.T) {
	setupInstallTest(t)
	isElevated = func() bool { return false }
	relaunchElevated = func() error { return errors.New("user declined") }

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elevation denied")
}

func TestInstall_SelectionAborted(t *testing.T) {
	env := setupInstallTest(t)
	env.pickerErr = errors.New("user aborted")

	err := Install(context.Background(), InstallOptions{Plain: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection aborted")
}
