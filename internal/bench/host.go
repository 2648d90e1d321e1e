package bench

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
)

// ProbeHost describes the current machine. Fields gopsutil cannot read are
// left empty; probing never fails a run.
func ProbeHost(ctx context.Context) run.HostInfo {
	info := run.HostInfo{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		LogicalCores: runtime.NumCPU(),
	}

	if name, err := os.Hostname(); err == nil {
		info.Hostname = name
	}
	if stats, err := cpu.InfoWithContext(ctx); err == nil && len(stats) > 0 {
		info.CPUModel = stats[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		info.LogicalCores = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
	}

	return info
}
