// Package sysinfo collects host hardware information: processor, memory
// modules, volumes, and display adapters. Values are raw; formatting is
// left to the caller.
package sysinfo

import (
	"context"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/winprep/winprep/internal/gpu"
	"github.com/winprep/winprep/internal/run"
)

// MemoryModule is one physical memory module.
type MemoryModule struct {
	CapacityBytes uint64 `json:"capacityBytes" yaml:"capacityBytes"`
	SpeedMHz      uint64 `json:"speedMHz" yaml:"speedMHz"`
}

// Volume is one mounted volume with its capacity figures.
type Volume struct {
	Mount      string `json:"mount" yaml:"mount"`
	TotalBytes uint64 `json:"totalBytes" yaml:"totalBytes"`
	FreeBytes  uint64 `json:"freeBytes" yaml:"freeBytes"`
}

// Info is the collected hardware snapshot.
type Info struct {
	Hostname         string         `json:"hostname" yaml:"hostname"`
	OS               string         `json:"os" yaml:"os"`
	CPU              string         `json:"cpu" yaml:"cpu"`
	MemoryTotalBytes uint64         `json:"memoryTotalBytes" yaml:"memoryTotalBytes"`
	MemoryModules    []MemoryModule `json:"memoryModules,omitempty" yaml:"memoryModules,omitempty"`
	Volumes          []Volume       `json:"volumes" yaml:"volumes"`
	Adapters         []string       `json:"displayAdapters,omitempty" yaml:"displayAdapters,omitempty"`
}

// Collect gathers the snapshot. Individual probes degrade to empty
// fields rather than failing the whole collection; only a total absence
// of host data is an error.
func Collect(ctx context.Context, r run.Runner) (*Info, error) {
	info := &Info{}

	h, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	info.Hostname = h.Hostname
	info.OS = strings.TrimSpace(h.Platform + " " + h.PlatformVersion)

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPU = cpus[0].ModelName
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemoryTotalBytes = vm.Total
	}

	if parts, err := disk.PartitionsWithContext(ctx, false); err == nil {
		for _, part := range parts {
			usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
			if err != nil {
				continue
			}
			info.Volumes = append(info.Volumes, Volume{
				Mount:      part.Mountpoint,
				TotalBytes: usage.Total,
				FreeBytes:  usage.Free,
			})
		}
	}

	if runtime.GOOS == "windows" {
		if modules, err := memoryModules(ctx, r); err == nil {
			info.MemoryModules = modules
		}
		if adapters, err := gpu.Adapters(ctx, r); err == nil {
			info.Adapters = adapters
		}
	}

	return info, nil
}

// moduleQuery lists "capacity speed" per physical memory module.
const moduleQuery = `Get-CimInstance Win32_PhysicalMemory | ForEach-Object { "$($_.Capacity) $($_.Speed)" }`

func memoryModules(ctx context.Context, r run.Runner) ([]MemoryModule, error) {
	out, err := r.CombinedOutput(ctx, "powershell",
		"-NoProfile", "-NonInteractive", "-Command", moduleQuery)
	if err != nil {
		return nil, err
	}
	return parseMemoryModules(out), nil
}

func parseMemoryModules(out []byte) []MemoryModule {
	var modules []MemoryModule
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		capacity, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		speed, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		modules = append(modules, MemoryModule{CapacityBytes: capacity, SpeedMHz: speed})
	}
	return modules
}
