package telemetry

import (
	"bufio"
	"io"
	"strings"
)

// CPUModel returns the processor brand string, or "" when the platform does not expose one.
func CPUModel() string {
	return cpuModel()
}

// parseCPUModel returns the first "model name" entry of a /proc/cpuinfo listing.
func parseCPUModel(r io.Reader) string {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if ok && strings.TrimSpace(key) == "model name" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
