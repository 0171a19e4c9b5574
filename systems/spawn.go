package systems

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Screen edges a target can enter from
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// UpdateSpawner spawns one target when the spawn interval has elapsed and
// steps the difficulty curve. The first call after a reset only starts the clock.
func UpdateSpawner(w donburi.World, now time.Duration, rng *rand.Rand) *donburi.Entry {
	pacing := GetPacing(w)
	if !pacing.Armed {
		pacing.Armed = true
		pacing.LastSpawn = now
		return nil
	}
	if !pacing.Due(now) {
		return nil
	}

	target := SpawnTarget(w, now, rng)
	pacing.Advance(now,
		cfg.Pacing.SpawnIntervalDecay, cfg.Pacing.MinSpawnInterval,
		cfg.Pacing.BombProbabilityGrowth, cfg.Pacing.MaxBombProbability)
	return target
}

// SpawnTarget creates one random target on a screen edge heading for the eyes
func SpawnTarget(w donburi.World, now time.Duration, rng *rand.Rand) *donburi.Entry {
	pacing := GetPacing(w)
	gaze := GetGaze(w)

	kind := components.TargetNormal
	if rng.Float64() < pacing.BombProbability {
		kind = components.TargetBomb
	}

	data := NewTargetData(rng, kind, gaze, now)
	return factory.CreateTarget(w, data)
}

// NewTargetData rolls the size, entry point, velocity, color and lifetime of a target
func NewTargetData(rng *rand.Rand, kind components.TargetKind, gaze *components.GazeData, now time.Duration) components.TargetData {
	width, height := cfg.C.Width, cfg.C.Height

	radius := float64(randIntRange(rng, cfg.Target.MinRadius, cfg.Target.MaxRadius))
	pos := edgePosition(rng, rng.Intn(4), width, height, radius)

	center := gamemath.Vec(float64(width)/2, float64(height)/2)
	direction := gamemath.Normalize(gamemath.Sub(gaze.AimPoint(center), pos))

	speedFactor := cfg.Target.NormalSpeedFactor
	if kind == components.TargetBomb {
		speedFactor = cfg.Target.BombSpeedFactor
	}
	speed := cfg.Target.MinSpeed + rng.Float64()*(cfg.Target.MaxSpeed-cfg.Target.MinSpeed)

	data := components.TargetData{
		Position:  pos,
		Velocity:  gamemath.Scale(direction, speed*speedFactor),
		Radius:    radius,
		Kind:      kind,
		CreatedAt: now,
		Lifetime:  cfg.Target.MinLifetime + time.Duration(rng.Float64()*float64(cfg.Target.MaxLifetime-cfg.Target.MinLifetime)),
	}

	if kind == components.TargetBomb {
		data.Color = cfg.Target.BombColor
		data.Points = 0
	} else {
		data.Color = randomColor(rng)
		data.Points = TargetPoints(radius)
	}
	return data
}

// TargetPoints is the score for hitting a normal target: smaller is worth more
func TargetPoints(radius float64) int {
	return int(math.Round(cfg.Target.ScoreNumerator / radius))
}

// edgePosition places a point one radius outside the given screen edge
func edgePosition(rng *rand.Rand, edge, width, height int, radius float64) dmath.Vec2 {
	switch edge {
	case EdgeTop:
		return gamemath.Vec(float64(rng.Intn(width+1)), -radius)
	case EdgeRight:
		return gamemath.Vec(float64(width)+radius, float64(rng.Intn(height+1)))
	case EdgeBottom:
		return gamemath.Vec(float64(rng.Intn(width+1)), float64(height)+radius)
	default:
		return gamemath.Vec(-radius, float64(rng.Intn(height+1)))
	}
}

func randomColor(rng *rand.Rand) color.RGBA {
	lo, hi := cfg.Target.MinColorChannel, cfg.Target.MaxColorChannel
	return color.RGBA{
		R: uint8(randIntRange(rng, lo, hi)),
		G: uint8(randIntRange(rng, lo, hi)),
		B: uint8(randIntRange(rng, lo, hi)),
		A: 255,
	}
}

// randIntRange returns an int in [lo, hi]
func randIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
