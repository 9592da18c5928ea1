package orchestrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winprep/winprep/internal/catalog"
)

func TestBuild_InstallsOnly(t *testing.T) {
	t.Parallel()

	plan := Build(catalog.Select([]string{"chrome", "steam"}), Options{})

	require.Equal(t, 2, plan.Len())
	assert.Equal(t, StepInstall, plan.Steps[0].Kind)
	assert.Equal(t, "chrome", plan.Steps[0].Entry.Key)
	assert.Equal(t, "steam", plan.Steps[1].Entry.Key)
}

func TestBuild_UpdateAllBeforeDriver(t *testing.T) {
	t.Parallel()

	driver := catalog.Entry{Key: "driver", PackageID: "Vendor.Driver", DisplayName: "Vendor Driver"}
	plan := Build(catalog.Select([]string{"chrome"}), Options{UpdateAll: true, Driver: &driver})

	require.Equal(t, 3, plan.Len())
	assert.Equal(t, StepInstall, plan.Steps[0].Kind)
	assert.Equal(t, StepUpdateAll, plan.Steps[1].Kind)
	assert.Equal(t, StepDriverInstall, plan.Steps[2].Kind)
	assert.Equal(t, "Vendor.Driver", plan.Steps[2].Entry.PackageID)
}

func TestBuild_NoDriverKeepsDenominatorAtSelectionSize(t *testing.T) {
	t.Parallel()

	// Two installs with nothing else wanted must yield exactly two
	// counted steps; advisory notes never enter the plan.
	plan := Build(catalog.Select([]string{"chrome", "steam"}), Options{})

	require.Equal(t, 2, plan.Len())
	for _, step := range plan.Steps {
		assert.Equal(t, StepInstall, step.Kind)
	}
}

func TestBuild_EmptySelection(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Build(nil, Options{}).Len())

	driver := catalog.Entry{Key: "driver", PackageID: "Vendor.Driver"}
	plan := Build(nil, Options{Driver: &driver})
	require.Equal(t, 1, plan.Len())
	assert.Equal(t, StepDriverInstall, plan.Steps[0].Kind)
}

func TestStepLabel(t *testing.T) {
	t.Parallel()

	install := Step{Kind: StepInstall, Entry: catalog.Entry{DisplayName: "Google Chrome"}}
	assert.Equal(t, "Google Chrome", install.Label())
	driver := Step{Kind: StepDriverInstall, Entry: catalog.Entry{DisplayName: "Vendor Driver"}}
	assert.Equal(t, "Vendor Driver", driver.Label())
	assert.Equal(t, "Update all packages", Step{Kind: StepUpdateAll}.Label())
	assert.Equal(t, "GPU driver advisory", Step{Kind: StepGPUAdvisory}.Label())
}
