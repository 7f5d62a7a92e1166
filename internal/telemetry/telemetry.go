// Package telemetry samples frame rate, process CPU and memory usage for the overlay.
//
// Sampling runs on its own goroutine and only reads process-wide counters; it never sees
// the scene. The render loop reports frames with FrameDone and reads the newest snapshot
// with Latest, both lock-free.
package telemetry

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
)

// DefaultInterval is how often a new snapshot is taken.
const DefaultInterval = 100 * time.Millisecond

const bytesPerGB = 1024 * 1024 * 1024

// Stats is one telemetry snapshot
type Stats struct {
	FPS        float64
	CPUPercent float64 // process CPU time over wall time, averaged over all CPUs
	MemUsedGB  float64 // system memory in use
	MemPercent float64
	HeapMB     float64 // Go heap in use by this process
	At         time.Time
}

// String formats the snapshot as a single status line.
func (s Stats) String() string {
	return fmt.Sprintf("FPS: %.1f | CPU: %.1f%% | RAM: %.1fGB (%.1f%%)",
		s.FPS, s.CPUPercent, s.MemUsedGB, s.MemPercent)
}

// Monitor collects Stats in the background
type Monitor struct {
	interval time.Duration
	numCPU   int

	now      func() time.Time
	cpuTime  func() (time.Duration, bool)
	memory   func() (used, total uint64, ok bool)
	onSample func(Stats)

	frames atomic.Uint64
	latest atomic.Pointer[Stats]

	// Owned by the sampling goroutine.
	lastAt     time.Time
	lastFrames uint64
	lastCPU    time.Duration
}

// Option configures a Monitor
type Option func(*Monitor)

// WithInterval overrides DefaultInterval
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithSampleHook is called on the sampling goroutine after every snapshot.
func WithSampleHook(fn func(Stats)) Option {
	return func(m *Monitor) {
		m.onSample = fn
	}
}

// NewMonitor creates a monitor reading the real process counters
func NewMonitor(opts ...Option) *Monitor {
	m := &Monitor{
		interval: DefaultInterval,
		numCPU:   runtime.NumCPU(),
		now:      time.Now,
		cpuTime:  processCPUTime,
		memory:   systemMemory,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastAt = m.now()
	m.lastCPU, _ = m.cpuTime()
	m.latest.Store(&Stats{At: m.lastAt})
	return m
}

// Interval returns the sampling period
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// FrameDone records one presented frame. Safe to call from any goroutine.
func (m *Monitor) FrameDone() {
	m.frames.Add(1)
}

// Latest returns the newest snapshot
func (m *Monitor) Latest() Stats {
	return *m.latest.Load()
}

// Start samples every interval until ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sample()
			}
		}
	}()
}

// Sample takes a snapshot now. It must not run concurrently with a Start loop.
func (m *Monitor) Sample() Stats {
	now := m.now()
	elapsed := now.Sub(m.lastAt)
	frames := m.frames.Load()

	s := Stats{At: now}
	if elapsed > 0 {
		s.FPS = float64(frames-m.lastFrames) / elapsed.Seconds()
	}

	if cpu, ok := m.cpuTime(); ok {
		if elapsed > 0 && m.numCPU > 0 {
			s.CPUPercent = 100 * (cpu - m.lastCPU).Seconds() / elapsed.Seconds() / float64(m.numCPU)
		}
		m.lastCPU = cpu
	}

	if used, total, ok := m.memory(); ok && total > 0 {
		s.MemUsedGB = float64(used) / bytesPerGB
		s.MemPercent = 100 * float64(used) / float64(total)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.HeapMB = float64(ms.HeapInuse) / (1024 * 1024)

	m.lastAt = now
	m.lastFrames = frames
	m.latest.Store(&s)
	if m.onSample != nil {
		m.onSample(s)
	}
	return s
}
