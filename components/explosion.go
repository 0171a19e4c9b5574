package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ExplosionData is a purely visual effect that grows for the first half of
// Duration and shrinks for the second half.
type ExplosionData struct {
	Position  dmath.Vec2
	Size      float64
	MaxSize   float64
	Color     color.RGBA
	CreatedAt time.Duration
	Duration  time.Duration
	Bomb      bool
	Active    bool

	grow   *gween.Tween
	shrink *gween.Tween
}

var Explosion = donburi.NewComponentType[ExplosionData]()

func NewExplosion(pos dmath.Vec2, startSize, maxSize float64, c color.RGBA, now, duration time.Duration) ExplosionData {
	half := float32(duration.Seconds() / 2)
	return ExplosionData{
		Position:  pos,
		Size:      startSize,
		MaxSize:   maxSize,
		Color:     c,
		CreatedAt: now,
		Duration:  duration,
		Active:    true,
		grow:      gween.New(float32(startSize), float32(maxSize), half, ease.Linear),
		shrink:    gween.New(float32(maxSize), 0, half, ease.Linear),
	}
}

// Advance updates Size for the given time and deactivates the explosion once
// the duration has elapsed or the size has shrunk to zero.
func (e *ExplosionData) Advance(now time.Duration) {
	if !e.Active {
		return
	}

	elapsed := now - e.CreatedAt
	if elapsed > e.Duration {
		e.Size = 0
		e.Active = false
		return
	}

	half := e.Duration / 2
	if elapsed < half {
		v, _ := e.grow.Set(float32(elapsed.Seconds()))
		e.Size = float64(v)
		return
	}

	v, _ := e.shrink.Set(float32((elapsed - half).Seconds()))
	e.Size = float64(v)
	if e.Size <= 0 {
		e.Size = 0
		e.Active = false
	}
}
