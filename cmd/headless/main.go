package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/core"
	"github.com/automoto/gazelaser/logging"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing gazelaser.json")
	duration := flag.Duration("duration", time.Minute, "Game time to simulate")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = config value)")
	seed := flag.Int64("seed", 0, "Random seed (0 = config value)")
	realtime := flag.Bool("realtime", false, "Tick on a wall-clock ticker instead of as fast as possible")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		l := logging.Setup("info", os.Stderr)
		l.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := logging.Setup(config.Debug.LogLevel, os.Stdout)

	if *tickRate <= 0 {
		*tickRate = config.C.TickRate
	}
	if *seed == 0 {
		*seed = config.C.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sim := core.NewSimulation(core.WithRand(rand.New(rand.NewSource(*seed))))
	session := core.NewSession(sim)

	var loop *core.GameLoop
	pilot := core.NewAutopilot(func() *core.Snapshot { return loop.Latest() })
	loop = core.NewGameLoop(session, pilot, *tickRate)
	if *realtime {
		// the autopilot only touches the loop through the atomic Latest
		loop.PumpFrom(pilot, config.Sensor.AutopilotPollInterval)
	}

	logger.Info().
		Int64("seed", *seed).
		Int("tickRate", *tickRate).
		Dur("duration", *duration).
		Bool("realtime", *realtime).
		Msg("Starting headless run")

	if *realtime {
		ctx, cancel := context.WithTimeout(context.Background(), *duration)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info().Msg("Shutting down...")
			cancel()
		}()

		loop.Run(ctx)
	} else {
		step := time.Second / time.Duration(*tickRate)
		for now := time.Duration(0); now <= *duration; now += step {
			loop.Step(now)
			if session.State().GameOver {
				break
			}
		}
	}

	state := session.State()
	logger.Info().
		Int("score", state.Score).
		Int("level", state.Level).
		Int("lives", state.Lives).
		Bool("gameOver", state.GameOver).
		Msg("Headless run finished")
}
