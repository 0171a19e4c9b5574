package components

import (
	"image/color"
	"time"

	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BeamData is a laser segment from Origin along Direction.
// End is derived and is only changed through Aim.
type BeamData struct {
	Origin    dmath.Vec2
	Direction dmath.Vec2 // need not be normalized
	End       dmath.Vec2
	Length    float64
	Width     float64
	Color     color.RGBA
	CreatedAt time.Duration
	Duration  time.Duration // ignored for aim beams
	IsAim     bool
	Active    bool
}

var Beam = donburi.NewComponentType[BeamData]()

// NewBeam returns an active beam with its endpoint computed.
func NewBeam(origin, direction dmath.Vec2, length float64, now time.Duration) BeamData {
	b := BeamData{
		Length:    length,
		CreatedAt: now,
		Active:    true,
	}
	b.Aim(origin, direction)
	return b
}

// Aim repositions the beam and recomputes its endpoint.
func (b *BeamData) Aim(origin, direction dmath.Vec2) {
	b.Origin = origin
	b.Direction = direction
	b.End = gamemath.SegmentEnd(origin, direction, b.Length)
}

// Advance expires fired beams once more than Duration has passed since creation.
func (b *BeamData) Advance(now time.Duration) {
	if b.IsAim || !b.Active {
		return
	}
	if now-b.CreatedAt > b.Duration {
		b.Active = false
	}
}

// Fireable reports whether the beam takes part in collision detection.
func (b *BeamData) Fireable() bool {
	return b.Active && !b.IsAim
}
