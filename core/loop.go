package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/sensor"
	"github.com/rs/zerolog"
)

// GameLoop drives a Session from a sensor at a fixed tick rate without a window.
type GameLoop struct {
	session  *Session
	source   sensor.Source
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	start    time.Time
	latest   atomic.Pointer[Snapshot]
	logger   zerolog.Logger

	// set by PumpFrom
	pump         sensor.Source
	pollInterval time.Duration
	handoff      *sensor.Handoff
}

func NewGameLoop(session *Session, source sensor.Source, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  session,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		logger:   logging.Component("loop"),
	}
}

// PumpFrom moves src onto its own goroutine while Run is active. The sensor is
// polled every interval and ticks read the latest published reading.
func (g *GameLoop) PumpFrom(src sensor.Source, interval time.Duration) *GameLoop {
	if interval <= 0 {
		interval = time.Second / time.Duration(g.tickRate)
	}
	g.pump = src
	g.pollInterval = interval
	g.handoff = &sensor.Handoff{}
	g.source = g.handoff
	return g
}

// Run ticks until Stop is called or ctx is done. The game clock starts at zero
// when Run is entered.
func (g *GameLoop) Run(ctx context.Context) {
	g.running.Store(true)
	defer g.running.Store(false)

	g.start = time.Now()

	if g.pump != nil {
		var wg sync.WaitGroup
		defer wg.Wait()
		pumpCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		start := g.start
		wg.Add(1)
		go func() {
			defer wg.Done()
			sensor.Pump(pumpCtx, g.pump, g.handoff, g.pollInterval, func() time.Duration {
				return time.Since(start)
			})
		}()
		g.logger.Debug().Dur("interval", g.pollInterval).Msg("Sensor pump started")
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info().Int("tickRate", g.tickRate).Msg("Game loop started")

	for {
		select {
		case <-ctx.Done():
			g.logger.Info().Msg("Game loop stopped")
			return
		case <-g.stopChan:
			g.logger.Info().Msg("Game loop stopped")
			return
		case <-ticker.C:
			g.Step(time.Since(g.start))
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

// Running reports whether Run is active
func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Step reads the sensor, steps the session at now and publishes a snapshot.
func (g *GameLoop) Step(now time.Duration) StepResult {
	res := g.session.Step(now, g.source.Read(now))
	snap := g.session.Snapshot()
	g.latest.Store(&snap)
	return res
}

// Latest returns the most recently published snapshot, or nil before the first tick.
// The snapshot must not be modified.
func (g *GameLoop) Latest() *Snapshot {
	return g.latest.Load()
}
