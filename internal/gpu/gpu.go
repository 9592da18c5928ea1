// Package gpu detects the host's discrete GPU vendor from display
// adapter descriptors and turns the result into a one-shot driver
// advisory step.
package gpu

import (
	"context"
	"strings"

	"github.com/winprep/winprep/internal/run"
)

// Vendor is a detected GPU vendor.
type Vendor string

const (
	NVIDIA  Vendor = "NVIDIA"
	AMD     Vendor = "AMD"
	Unknown Vendor = "Unknown"
)

// excludedAdapterPatterns marks virtual and remote-display adapters.
// Matching entries are skipped so a virtualized or remote session does
// not misreport a driver vendor.
var excludedAdapterPatterns = []string{
	"remote display",
	"basic display",
	"basic render",
	"virtual",
	"vmware",
	"virtualbox",
	"hyper-v",
	"parallels",
	"qxl",
	"rdp",
}

// DetectVendor returns the vendor of the first concrete adapter match.
// Matching is a case-insensitive substring check, NVIDIA before AMD for
// each descriptor; absence of any match yields Unknown.
func DetectVendor(adapters []string) Vendor {
	for _, name := range adapters {
		lower := strings.ToLower(name)
		if isExcludedAdapter(lower) {
			continue
		}
		if strings.Contains(lower, "nvidia") {
			return NVIDIA
		}
		if strings.Contains(lower, "amd") || strings.Contains(lower, "radeon") {
			return AMD
		}
	}
	return Unknown
}

func isExcludedAdapter(lowerName string) bool {
	for _, pattern := range excludedAdapterPatterns {
		if strings.Contains(lowerName, pattern) {
			return true
		}
	}
	return false
}

// adapterQuery lists display adapter names, one per line.
const adapterQuery = "Get-CimInstance Win32_VideoController | Select-Object -ExpandProperty Name"

// Adapters enumerates display adapter descriptors via a CIM query.
func Adapters(ctx context.Context, r run.Runner) ([]string, error) {
	out, err := r.CombinedOutput(ctx, "powershell",
		"-NoProfile", "-NonInteractive", "-Command", adapterQuery)
	if err != nil {
		return nil, err
	}
	return parseAdapters(out), nil
}

func parseAdapters(out []byte) []string {
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
