//go:build !windows

package elevation

import (
	"errors"
	"os"
)

// IsElevated reports whether the process runs as root. Package installs
// on non-Windows hosts are only exercised in tests, but the check keeps
// the handler flow identical across platforms.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// Relaunch is not supported outside Windows.
func Relaunch() error {
	return errors.New("elevated relaunch is only supported on windows")
}
