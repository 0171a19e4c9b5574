package components

import (
	"image/color"
	"time"

	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TargetKind separates scoring targets from bombs
type TargetKind int

const (
	TargetNormal TargetKind = iota
	TargetBomb
)

func (k TargetKind) String() string {
	if k == TargetBomb {
		return "bomb"
	}
	return "normal"
}

// TargetSignal is reported by TargetData.Advance
type TargetSignal int

const (
	SignalNone TargetSignal = iota
	SignalGameOver
)

type TargetData struct {
	Position  dmath.Vec2
	Velocity  dmath.Vec2 // pixels per tick
	Radius    float64
	Color     color.RGBA
	Points    int // 0 for bombs
	Kind      TargetKind
	CreatedAt time.Duration
	Lifetime  time.Duration
	Active    bool
}

var Target = donburi.NewComponentType[TargetData]()

func (t *TargetData) IsBomb() bool {
	return t.Kind == TargetBomb
}

// Advance moves the target one tick and deactivates it when it leaves the
// screen or outlives its lifetime. An active bomb within Radius+eyeRadius of
// any eye returns SignalGameOver; the bomb itself keeps going.
func (t *TargetData) Advance(now time.Duration, width, height, eyeRadius float64, eyes []dmath.Vec2) TargetSignal {
	if !t.Active {
		return SignalNone
	}

	t.Position = gamemath.Add(t.Position, t.Velocity)

	if t.Position.X+t.Radius < 0 ||
		t.Position.X-t.Radius > width ||
		t.Position.Y+t.Radius < 0 ||
		t.Position.Y-t.Radius > height {
		t.Active = false
	}

	if now-t.CreatedAt > t.Lifetime {
		t.Active = false
	}

	if t.IsBomb() && t.NearAnyEye(eyeRadius, eyes) {
		return SignalGameOver
	}
	return SignalNone
}

// NearAnyEye reports whether the target is strictly within Radius+eyeRadius of an eye.
func (t *TargetData) NearAnyEye(eyeRadius float64, eyes []dmath.Vec2) bool {
	for _, eye := range eyes {
		if gamemath.Distance(t.Position, eye) < t.Radius+eyeRadius {
			return true
		}
	}
	return false
}

// Bounds returns the target's bounding box as x, y, w, h.
func (t *TargetData) Bounds() (x, y, w, h float64) {
	return t.Position.X - t.Radius, t.Position.Y - t.Radius, t.Radius * 2, t.Radius * 2
}

// CullBounds is Bounds grown by a pixel on every side. resolv registers a box
// in the cells covering [x, x+w-1], which would drop a circle that reaches
// less than a pixel onto the screen.
func (t *TargetData) CullBounds() (x, y, w, h float64) {
	x, y, w, h = t.Bounds()
	return x - 1, y - 1, w + 2, h + 2
}

// OnScreen reports whether the bounding box touches a width x height screen.
// Edges count as on screen.
func (t *TargetData) OnScreen(width, height float64) bool {
	return t.Position.X+t.Radius >= 0 &&
		t.Position.X-t.Radius <= width &&
		t.Position.Y+t.Radius >= 0 &&
		t.Position.Y-t.Radius <= height
}
