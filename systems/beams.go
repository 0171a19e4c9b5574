package systems

import (
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateFiring returns the trigger to Idle once the firing window has passed.
// Runs at the start of every tick.
func UpdateFiring(w donburi.World, now time.Duration) {
	firing := GetFiring(w)
	if firing.Firing && now >= firing.Expiry {
		firing.Firing = false
	}
}

// IsFiring reports whether a fired beam is still cooling down
func IsFiring(w donburi.World) bool {
	return GetFiring(w).Firing
}

// UpdateBeams expires fired beams and drops inactive ones
func UpdateBeams(w donburi.World, now time.Duration) {
	var toRemove []*donburi.Entry

	tags.Beam.Each(w, func(e *donburi.Entry) {
		beam := components.Beam.Get(e)
		beam.Advance(now)
		if !beam.Active {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}

// UpdateAimBeams keeps one aim beam per tracked eye pointing at the gaze point.
// While firing, both slots are cleared instead.
func UpdateAimBeams(w donburi.World, now time.Duration) {
	firing := GetFiring(w)
	if firing.Firing {
		ClearAimBeams(w)
		return
	}

	gaze := GetGaze(w)
	for i := range firing.AimSlots {
		slot := &firing.AimSlots[i]
		eye := gaze.Eye(i)

		if eye == nil || gaze.Gaze == nil {
			releaseAimSlot(w, slot)
			continue
		}

		direction := gamemath.Direction(*eye, *gaze.Gaze)
		if slot.Held && w.Valid(slot.Beam) {
			components.Beam.Get(w.Entry(slot.Beam)).Aim(*eye, direction)
			continue
		}

		beam := factory.CreateAimBeam(w, *eye, direction, now)
		slot.Beam = beam.Entity()
		slot.Held = true
	}
}

// ClearAimBeams destroys both aim beams and empties their slots
func ClearAimBeams(w donburi.World) {
	firing := GetFiring(w)
	for i := range firing.AimSlots {
		releaseAimSlot(w, &firing.AimSlots[i])
	}
}

func releaseAimSlot(w donburi.World, slot *components.AimSlot) {
	if slot.Held && w.Valid(slot.Beam) {
		w.Remove(slot.Beam)
	}
	*slot = components.AimSlot{}
}

// FireBeam fires one beam from eye toward aim and enters the Firing state.
// Nil arguments make it a no-op.
func FireBeam(w donburi.World, now time.Duration, eye, aim *dmath.Vec2) bool {
	if eye == nil || aim == nil {
		return false
	}

	firing := GetFiring(w)
	firing.Firing = true
	firing.Expiry = now + cfg.Beam.FiredDuration

	ClearAimBeams(w)
	factory.CreateFiredBeam(w, *eye, gamemath.Direction(*eye, *aim), now)
	return true
}

// TryFire fires from every tracked eye toward the gaze point, unless the
// previous trigger was less than cfg.Fire.Cooldown ago. Returns whether any
// beam was fired.
func TryFire(w donburi.World, now time.Duration) bool {
	firing := GetFiring(w)
	if !firing.CooledDown(now, cfg.Fire.Cooldown) {
		return false
	}

	gaze := GetGaze(w)
	left, right, point := gaze.LeftEye, gaze.RightEye, gaze.Gaze

	fired := FireBeam(w, now, left, point)
	if FireBeam(w, now, right, point) {
		fired = true
	}

	if fired {
		firing.LastFire = now
		firing.HasFired = true
	}
	return fired
}

// FireableBeams returns the beams that take part in collision detection
func FireableBeams(w donburi.World) []*donburi.Entry {
	var beams []*donburi.Entry
	tags.Beam.Each(w, func(e *donburi.Entry) {
		if components.Beam.Get(e).Fireable() {
			beams = append(beams, e)
		}
	})
	return beams
}
