package utils

import "time"

// Timer measures elapsed wall-clock time for one parse run. [NewTimer] starts
// it; [Timer.Stop] freezes the measurement.
type Timer struct {
	startTime time.Time
	duration  time.Duration
	stopped   bool
}

// NewTimer creates a Timer that is already running.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Stop records the time elapsed since construction and returns it. Later
// calls return the first measurement unchanged.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.duration = time.Since(t.startTime)
		t.stopped = true
	}
	return t.duration
}

// GetDuration returns the stopped duration, or the running elapsed time if
// Stop has not been called.
func (t *Timer) GetDuration() time.Duration {
	if t.stopped {
		return t.duration
	}
	return time.Since(t.startTime)
}

// Milliseconds returns GetDuration as fractional milliseconds, the unit used
// by duration histograms.
func (t *Timer) Milliseconds() float64 {
	return float64(t.GetDuration()) / float64(time.Millisecond)
}
