//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package telemetry

func cpuModel() string {
	return ""
}
