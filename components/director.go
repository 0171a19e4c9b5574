package components

import (
	"time"

	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PacingData holds the difficulty curve state
type PacingData struct {
	LastSpawn       time.Duration
	Armed           bool // LastSpawn is set on the first tick after a reset
	SpawnInterval   time.Duration
	BombProbability float64
	Spawned         int
}

var Pacing = donburi.NewComponentType[PacingData]()

// Due reports whether more than SpawnInterval has passed since the last spawn.
func (p *PacingData) Due(now time.Duration) bool {
	return p.Armed && now-p.LastSpawn > p.SpawnInterval
}

// Advance records a spawn at now and steps the curve: the interval decays
// toward minInterval and the bomb probability grows toward maxBomb.
func (p *PacingData) Advance(now time.Duration, decay float64, minInterval time.Duration, growth, maxBomb float64) {
	p.LastSpawn = now
	p.Spawned++

	next := time.Duration(float64(p.SpawnInterval) * decay)
	if next < minInterval {
		next = minInterval
	}
	p.SpawnInterval = next
	p.BombProbability = gamemath.Clamp(p.BombProbability*growth, 0, maxBomb)
}

// GazeData holds the latest tracked eye and gaze positions. Nil means unknown.
type GazeData struct {
	LeftEye  *dmath.Vec2
	RightEye *dmath.Vec2
	Gaze     *dmath.Vec2
}

var Gaze = donburi.NewComponentType[GazeData]()

// Eye returns the eye for slot 0 (left) or 1 (right).
func (g *GazeData) Eye(slot int) *dmath.Vec2 {
	if slot == 0 {
		return g.LeftEye
	}
	return g.RightEye
}

// KnownEyes returns the positions of the eyes that are currently tracked.
func (g *GazeData) KnownEyes() []dmath.Vec2 {
	eyes := make([]dmath.Vec2, 0, 2)
	if g.LeftEye != nil {
		eyes = append(eyes, *g.LeftEye)
	}
	if g.RightEye != nil {
		eyes = append(eyes, *g.RightEye)
	}
	return eyes
}

// AimPoint is where targets head for: the midpoint between both eyes, or
// fallback when either eye is unknown.
func (g *GazeData) AimPoint(fallback dmath.Vec2) dmath.Vec2 {
	if g.LeftEye == nil || g.RightEye == nil {
		return fallback
	}
	return gamemath.Midpoint(*g.LeftEye, *g.RightEye)
}

// AimSlot holds the aim beam of one eye, if any
type AimSlot struct {
	Beam donburi.Entity
	Held bool
}

// FiringData is the trigger state machine: Idle until a beam is fired,
// Firing until Expiry.
type FiringData struct {
	Firing   bool
	Expiry   time.Duration
	LastFire time.Duration
	HasFired bool // LastFire is meaningful
	AimSlots [2]AimSlot
}

var Firing = donburi.NewComponentType[FiringData]()

// CooledDown reports whether a new trigger is accepted at now.
func (f *FiringData) CooledDown(now, cooldown time.Duration) bool {
	return !f.HasFired || now-f.LastFire > cooldown
}
