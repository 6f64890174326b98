//go:build unix

package cputime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type processClock struct{}

// Sample reads CLOCK_PROCESS_CPUTIME_ID, the CPU time consumed by all
// threads of the current process since it started.
func (processClock) Sample() (Sample, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime(CLOCK_PROCESS_CPUTIME_ID): %w", err)
	}
	return Sample(ts.Nano()), nil
}
