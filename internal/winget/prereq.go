package winget

import (
	"fmt"
	"os/exec"
)

// Tool describes a client tool winprep depends on.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// RequiredTools returns the tools that must be present before any
// install step executes.
func RequiredTools() []Tool {
	return []Tool{
		{
			Name:        Binary,
			Description: "Windows Package Manager, used for all installs and upgrades",
			InstallURL:  "https://learn.microsoft.com/windows/package-manager/winget/",
		},
	}
}

// lookPath is abstracted for testing.
var lookPath = exec.LookPath

// CheckPrerequisites verifies the required tools are available. A
// missing tool is fatal: the run must abort before the first step.
func CheckPrerequisites() error {
	for _, tool := range RequiredTools() {
		if _, err := lookPath(tool.Name); err != nil {
			return fmt.Errorf("no usable %s installation found (%s): install it first, see %s",
				tool.Name, tool.Description, tool.InstallURL)
		}
	}
	return nil
}
