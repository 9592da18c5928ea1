// Package picker presents the checkbox selection form: which catalog
// applications to install and whether to run the bulk upgrade.
package picker

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/winprep/winprep/internal/catalog"
)

// Result holds the user's choices.
type Result struct {
	// Keys are the selected catalog keys.
	Keys []string

	// UpdateAll requests the bulk winget upgrade after the installs.
	UpdateAll bool
}

// Run presents the form over the given entries.
func Run(ctx context.Context, entries []catalog.Entry) (*Result, error) {
	res := &Result{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Applications").
				Description("Select the applications to install").
				Options(entryOptions(entries)...).
				Value(&res.Keys),
			huh.NewConfirm().
				Title("Update all installed packages?").
				Description("Runs a bulk winget upgrade after the selected installs").
				Value(&res.UpdateAll),
		).Title("winprep"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func entryOptions(entries []catalog.Entry) []huh.Option[string] {
	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		options[i] = huh.NewOption(e.DisplayName, e.Key)
	}
	return options
}
