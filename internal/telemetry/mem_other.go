//go:build !linux

package telemetry

func systemMemory() (used, total uint64, ok bool) {
	return 0, 0, false
}
