//go:build darwin || freebsd || netbsd || openbsd

package telemetry

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func cpuModel() string {
	key := "hw.model"
	if runtime.GOOS == "darwin" {
		key = "machdep.cpu.brand_string"
	}
	model, err := unix.Sysctl(key)
	if err != nil {
		return ""
	}
	return model
}
