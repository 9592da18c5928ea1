package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/winprep/winprep/internal/sysinfo"
)

// collectSysinfo is abstracted for testing.
var collectSysinfo = sysinfo.Collect

// Sysinfo prints host hardware information in the requested format.
func Sysinfo(ctx context.Context, output string) error {
	info, err := collectSysinfo(ctx, newRunner())
	if err != nil {
		return fmt.Errorf("collect system info: %w", err)
	}

	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(info)
	case "text", "":
		printSysinfoText(info)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", output)
	}
}

func printSysinfoText(info *sysinfo.Info) {
	fmt.Printf("Host:   %s (%s)\n", info.Hostname, info.OS)
	fmt.Printf("CPU:    %s\n", info.CPU)
	fmt.Printf("Memory: %s\n", humanize.IBytes(info.MemoryTotalBytes))
	for _, m := range info.MemoryModules {
		fmt.Printf("  module: %s @ %d MHz\n", humanize.IBytes(m.CapacityBytes), m.SpeedMHz)
	}
	for _, v := range info.Volumes {
		fmt.Printf("Volume %s: %s free of %s\n",
			v.Mount, humanize.IBytes(v.FreeBytes), humanize.IBytes(v.TotalBytes))
	}
	for _, a := range info.Adapters {
		fmt.Printf("GPU:    %s\n", a)
	}
}
