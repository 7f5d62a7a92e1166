//go:build unix

package telemetry

import (
	"time"

	"golang.org/x/sys/unix"
)

// processCPUTime returns user+system CPU time consumed by this process.
func processCPUTime() (time.Duration, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), true
}
