// Package main is the entry point for the winprep CLI.
//
// winprep is a checkbox-driven front end over the Windows Package
// Manager (winget). It installs a fixed catalog of desktop
// applications, optionally runs a bulk upgrade, advises on GPU drivers,
// and displays host hardware information.
//
// Commands: install, sysinfo, catalog, version, completion.
//
// For detailed usage information, run:
//
//	winprep --help
package main

import (
	"fmt"
	"os"

	"github.com/winprep/winprep/cmd/winprep/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
