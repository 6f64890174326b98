// Package cputime samples the processor time consumed by the current
// process, so that a single measured call can be bracketed by two samples.
package cputime

import (
	"errors"
	"fmt"
)

// Sample is a process CPU time reading in nanoseconds. Samples are
// monotonically non-decreasing within a run.
type Sample int64

// Duration is the nonnegative difference between two Samples, in
// nanoseconds.
type Duration int64

// ErrNonMonotonic reports that the platform clock handed back a
// decreasing pair of samples. That is an environment fault; it must never
// be folded into a negative duration.
var ErrNonMonotonic = errors.New("non-monotonic process clock samples")

// Clock produces Samples. It is stateless; tests substitute their own.
type Clock interface {
	Sample() (Sample, error)
}

// New returns the process CPU clock for this platform.
func New() Clock {
	return processClock{}
}

// Elapsed returns end minus start.
func Elapsed(start, end Sample) (Duration, error) {
	if end < start {
		return 0, fmt.Errorf("%w: start=%d end=%d", ErrNonMonotonic, start, end)
	}
	return Duration(end - start), nil
}
