package core

import "time"

// FPSCounter averages the last N frame durations
type FPSCounter struct {
	samples []time.Duration
	next    int
	filled  bool
	prev    time.Duration
	started bool
}

func NewFPSCounter(n int) *FPSCounter {
	if n < 1 {
		n = 1
	}
	return &FPSCounter{samples: make([]time.Duration, n)}
}

// Frame records a frame at now. The first call only sets the reference time;
// frames that do not advance the clock are not sampled.
func (f *FPSCounter) Frame(now time.Duration) {
	if !f.started {
		f.prev = now
		f.started = true
		return
	}

	d := now - f.prev
	f.prev = now
	if d <= 0 {
		return
	}

	f.samples[f.next] = d
	f.next++
	if f.next == len(f.samples) {
		f.next = 0
		f.filled = true
	}
}

// FPS returns frames per second over the recorded samples, 0 with none
func (f *FPSCounter) FPS() float64 {
	n := f.next
	if f.filled {
		n = len(f.samples)
	}
	if n == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range f.samples[:n] {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(n) / total.Seconds()
}
