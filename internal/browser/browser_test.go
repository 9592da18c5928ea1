package browser

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_TargetsURL(t *testing.T) {
	t.Parallel()

	cmd := command("https://example.test/drivers")

	require.NotEmpty(t, cmd.Args)
	assert.Equal(t, "https://example.test/drivers", cmd.Args[len(cmd.Args)-1])
}

func TestLaunch_StartFailure(t *testing.T) {
	t.Parallel()

	err := launch(exec.Command("winprep-no-such-handler"), "https://example.test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://example.test")
}
