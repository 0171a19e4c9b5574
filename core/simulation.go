package core

import (
	"math/rand"
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/systems"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Simulation owns the world of targets, beams and explosions and advances it
// one tick at a time. It is not safe for concurrent use.
type Simulation struct {
	world  donburi.World
	rng    *rand.Rand
	logger zerolog.Logger
	now    time.Duration
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand sets the random source used for spawning
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithLogger replaces the default component logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithWorld runs the simulation on an existing world, e.g. the game scene's
func WithWorld(w donburi.World) Option {
	return func(s *Simulation) {
		s.world = w
	}
}

// NewSimulation creates a simulation with an empty playfield
func NewSimulation(opts ...Option) *Simulation {
	s := &Simulation{
		logger: logging.Component("simulation"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.world == nil {
		s.world = donburi.NewWorld()
	}
	if s.rng == nil {
		seed := cfg.C.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	if _, ok := components.Space.First(s.world); !ok {
		factory.CreateSpace(s.world, cfg.C.Width, cfg.C.Height, cfg.C.CellSize)
	}
	systems.GetOrCreateDirector(s.world)
	return s
}

// World exposes the underlying donburi world for rendering
func (s *Simulation) World() donburi.World {
	return s.world
}

// Now returns the time of the last tick
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Reset clears all entities and puts pacing and trigger state back to their
// initial values. The spawn clock starts again on the next tick.
func (s *Simulation) Reset() {
	systems.ResetWorld(s.world)
	s.logger.Debug().Msg("Simulation reset")
}

// UpdateTrackedGaze stores the latest eye and gaze positions for the next tick.
// Nil eyes become unknown; a nil gaze keeps the previous gaze point.
func (s *Simulation) UpdateTrackedGaze(left, right, gaze *dmath.Vec2) {
	systems.SetTrackedGaze(s.world, left, right, gaze)
}

// Tick advances the world to now and reports whether a bomb touched an eye.
func (s *Simulation) Tick(now time.Duration) bool {
	s.now = now

	systems.UpdateFiring(s.world, now)
	gameOver := systems.UpdateTargets(s.world, now)
	systems.UpdateBeams(s.world, now)
	systems.UpdateExplosions(s.world, now)

	if !systems.IsFiring(s.world) {
		systems.UpdateAimBeams(s.world, now)
	}

	if spawned := systems.UpdateSpawner(s.world, now, s.rng); spawned != nil {
		t := components.Target.Get(spawned)
		pacing := systems.GetPacing(s.world)
		s.logger.Debug().
			Str("kind", t.Kind.String()).
			Float64("radius", t.Radius).
			Dur("interval", pacing.SpawnInterval).
			Float64("bombProbability", pacing.BombProbability).
			Msg("Target spawned")
	}

	if gameOver {
		s.logger.Debug().Dur("now", now).Msg("Bomb reached an eye")
	}
	return gameOver
}

// Fire shoots one beam from eye toward aim. Nil arguments do nothing.
func (s *Simulation) Fire(now time.Duration, eye, aim *dmath.Vec2) bool {
	return systems.FireBeam(s.world, now, eye, aim)
}

// TryFire fires from every tracked eye unless the trigger is cooling down.
func (s *Simulation) TryFire(now time.Duration) bool {
	fired := systems.TryFire(s.world, now)
	if fired {
		s.logger.Debug().Dur("now", now).Msg("Beams fired")
	}
	return fired
}

// IsFiring reports whether a fired beam window is open
func (s *Simulation) IsFiring() bool {
	return systems.IsFiring(s.world)
}

// DetectCollisions returns every fired beam / visible target contact
func (s *Simulation) DetectCollisions() []systems.Hit {
	return systems.DetectCollisions(s.world)
}

// RemoveTarget destroys a hit target and leaves an explosion behind.
// Returns false when the target was already gone.
func (s *Simulation) RemoveTarget(target donburi.Entity) bool {
	return systems.RemoveTarget(s.world, target, s.now)
}

// TargetCount returns the number of live targets
func (s *Simulation) TargetCount() int {
	return systems.CountTargets(s.world)
}
