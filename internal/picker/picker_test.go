package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winprep/winprep/internal/catalog"
)

func TestEntryOptions(t *testing.T) {
	t.Parallel()

	entries := []catalog.Entry{
		{Key: "chrome", PackageID: "Google.Chrome", DisplayName: "Google Chrome"},
		{Key: "steam", PackageID: "Valve.Steam", DisplayName: "Steam"},
	}

	options := entryOptions(entries)
	require.Len(t, options, 2)
	assert.Equal(t, "Google Chrome", options[0].Key)
	assert.Equal(t, "chrome", options[0].Value)
	assert.Equal(t, "Steam", options[1].Key)
	assert.Equal(t, "steam", options[1].Value)
}

func TestEntryOptions_WholeCatalog(t *testing.T) {
	t.Parallel()

	options := entryOptions(catalog.Entries())
	assert.Len(t, options, len(catalog.Entries()))
}
