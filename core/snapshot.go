package core

import (
	"image/color"
	"time"

	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type TargetView struct {
	Entity   donburi.Entity
	Position dmath.Vec2
	Radius   float64
	Color    color.RGBA
	Kind     components.TargetKind
	Points   int
}

type BeamView struct {
	Origin dmath.Vec2
	End    dmath.Vec2
	Width  float64
	Color  color.RGBA
	IsAim  bool
}

type ExplosionView struct {
	Position dmath.Vec2
	Size     float64
	Color    color.RGBA
	Bomb     bool
}

// Snapshot is a read-only copy of one frame, safe to hand to other goroutines.
type Snapshot struct {
	Now        time.Duration
	Targets    []TargetView
	Beams      []BeamView
	Explosions []ExplosionView

	Score    int
	Level    int
	Lives    int
	FPS      float64
	Paused   bool
	GameOver bool
	Firing   bool

	LeftEye  *dmath.Vec2
	RightEye *dmath.Vec2
	Gaze     *dmath.Vec2
}

// Snapshot copies the current entities and tracking state
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{Now: s.now, Firing: s.IsFiring()}

	tags.Target.Each(s.world, func(e *donburi.Entry) {
		t := components.Target.Get(e)
		snap.Targets = append(snap.Targets, TargetView{
			Entity:   e.Entity(),
			Position: t.Position,
			Radius:   t.Radius,
			Color:    t.Color,
			Kind:     t.Kind,
			Points:   t.Points,
		})
	})

	tags.Beam.Each(s.world, func(e *donburi.Entry) {
		b := components.Beam.Get(e)
		snap.Beams = append(snap.Beams, BeamView{
			Origin: b.Origin,
			End:    b.End,
			Width:  b.Width,
			Color:  b.Color,
			IsAim:  b.IsAim,
		})
	})

	tags.Explosion.Each(s.world, func(e *donburi.Entry) {
		x := components.Explosion.Get(e)
		snap.Explosions = append(snap.Explosions, ExplosionView{
			Position: x.Position,
			Size:     x.Size,
			Color:    x.Color,
			Bomb:     x.Bomb,
		})
	})

	if e, ok := tags.Director.First(s.world); ok {
		g := components.Gaze.Get(e)
		snap.LeftEye = copyVec(g.LeftEye)
		snap.RightEye = copyVec(g.RightEye)
		snap.Gaze = copyVec(g.Gaze)
	}
	return snap
}

// EyeMidpoint returns the midpoint of both eyes, or false if either is unknown
func (s *Snapshot) EyeMidpoint() (dmath.Vec2, bool) {
	if s.LeftEye == nil || s.RightEye == nil {
		return dmath.Vec2{}, false
	}
	return gamemath.Midpoint(*s.LeftEye, *s.RightEye), true
}

func copyVec(v *dmath.Vec2) *dmath.Vec2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
