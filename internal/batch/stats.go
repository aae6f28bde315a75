package batch

import (
	"math"
	"time"
)

// Stats collects per-item generation timings for the end-of-run report.
type Stats struct {
	Durations []time.Duration
}

// Mean returns the average duration, or zero when nothing was recorded.
func (s Stats) Mean() time.Duration {
	if len(s.Durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total / time.Duration(len(s.Durations))
}

// Std returns the population standard deviation of the durations.
func (s Stats) Std() time.Duration {
	n := len(s.Durations)
	if n == 0 {
		return 0
	}
	mean := float64(s.Mean())
	var sum float64
	for _, d := range s.Durations {
		diff := float64(d) - mean
		sum += diff * diff
	}
	return time.Duration(math.Sqrt(sum / float64(n)))
}
