package winget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPrerequisites_Found(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(string) (string, error) { return `C:\winget.exe`, nil }

	assert.NoError(t, CheckPrerequisites())
}

func TestCheckPrerequisites_Missing(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	lookPath = func(string) (string, error) { return "", errors.New("not found") }

	err := CheckPrerequisites()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "winget")
	assert.Contains(t, err.Error(), "learn.microsoft.com")
}

func TestRequiredTools(t *testing.T) {
	t.Parallel()

	tools := RequiredTools()
	require.Len(t, tools, 1)
	assert.Equal(t, Binary, tools[0].Name)
	assert.NotEmpty(t, tools[0].InstallURL)
}
