//go:build windows

// Package elevation checks process privileges and relaunches winprep
// elevated when needed. Orchestration assumes elevation is satisfied
// before it begins.
package elevation

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch re-executes the current binary with the "runas" verb and the
// original arguments. On success the caller must exit; the elevated
// instance takes over. A declined UAC prompt surfaces as an error.
func Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	verb, err := syscall.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	exePtr, err := syscall.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	argsPtr, err := syscall.UTF16PtrFromString(strings.Join(os.Args[1:], " "))
	if err != nil {
		return err
	}
	cwdPtr, err := syscall.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, exePtr, argsPtr, cwdPtr, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("elevated relaunch: %w", err)
	}
	return nil
}
