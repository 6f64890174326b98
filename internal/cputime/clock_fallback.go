//go:build !unix

package cputime

import "time"

// Platforms without a process CPU clock fall back to the monotonic wall
// clock. Still nanoseconds, still non-decreasing, but it includes time
// the process spent off-CPU.

var processStart = time.Now()

type processClock struct{}

func (processClock) Sample() (Sample, error) {
	return Sample(time.Since(processStart)), nil
}
