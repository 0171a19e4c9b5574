package systems

import (
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
)

// UpdateTargets advances every target and drops the inactive ones. It returns
// true when any bomb touched an eye this tick; all targets advance regardless.
func UpdateTargets(w donburi.World, now time.Duration) bool {
	eyes := GetGaze(w).KnownEyes()
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	gameOver := false
	var toRemove []*donburi.Entry

	tags.Target.Each(w, func(e *donburi.Entry) {
		target := components.Target.Get(e)
		if target.Advance(now, width, height, cfg.Target.EyeRadius, eyes) == components.SignalGameOver {
			gameOver = true
		}

		if !target.Active {
			toRemove = append(toRemove, e)
			return
		}
		syncTargetObject(e, target)
	})

	for _, e := range toRemove {
		removeEntry(e)
	}
	return gameOver
}

// syncTargetObject moves the target's bounding box in the culling space
func syncTargetObject(e *donburi.Entry, target *components.TargetData) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = target.CullBounds()
	if obj.Space != nil {
		obj.Update()
	}
}

// RemoveTarget takes a hit target out of play and leaves an explosion at its
// last position. Removing a target that is already gone does nothing.
func RemoveTarget(w donburi.World, target donburi.Entity, now time.Duration) bool {
	if !w.Valid(target) {
		return false
	}
	e := w.Entry(target)
	if !e.HasComponent(components.Target) {
		return false
	}

	data := components.Target.Get(e)
	factory.CreateExplosion(w, data.Position, data.IsBomb(), now)
	removeEntry(e)
	return true
}

// CountTargets returns the number of live targets
func CountTargets(w donburi.World) int {
	n := 0
	tags.Target.Each(w, func(e *donburi.Entry) {
		n++
	})
	return n
}
