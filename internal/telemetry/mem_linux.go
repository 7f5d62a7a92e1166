//go:build linux

package telemetry

import "golang.org/x/sys/unix"

// systemMemory reports used and total physical memory in bytes.
func systemMemory() (used, total uint64, ok bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0, false
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total = uint64(info.Totalram) * unit
	free := (uint64(info.Freeram) + uint64(info.Bufferram)) * unit
	if free > total {
		free = total
	}
	return total - free, total, true
}
