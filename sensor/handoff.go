package sensor

import (
	"context"
	"sync/atomic"
	"time"
)

// Handoff passes readings from a sensor goroutine to the simulation.
// The writer publishes a whole Reading at once, so the reader never sees eye
// and gaze positions from different frames.
type Handoff struct {
	latest atomic.Pointer[Reading]
	seq    atomic.Uint64
}

// Publish replaces the latest reading
func (h *Handoff) Publish(r Reading) {
	c := r.Clone()
	h.latest.Store(&c)
	h.seq.Add(1)
}

// Latest returns the most recent reading and whether one was ever published
func (h *Handoff) Latest() (Reading, bool) {
	p := h.latest.Load()
	if p == nil {
		return Reading{}, false
	}
	return p.Clone(), true
}

// Seq counts publications; readers can compare it to skip frames they have seen
func (h *Handoff) Seq() uint64 {
	return h.seq.Load()
}

// Read lets a Handoff stand in as a Source for the simulation side
func (h *Handoff) Read(time.Duration) Reading {
	r, _ := h.Latest()
	return r
}

// Pump polls src every interval and publishes into h until ctx is done.
// clock supplies the timestamp passed to src.
func Pump(ctx context.Context, src Source, h *Handoff, interval time.Duration, clock func() time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Publish(src.Read(clock()))
		}
	}
}
