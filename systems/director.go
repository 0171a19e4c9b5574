package systems

import (
	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// GetOrCreateDirector returns the singleton director entry, creating it if needed
func GetOrCreateDirector(w donburi.World) *donburi.Entry {
	if e, ok := tags.Director.First(w); ok {
		return e
	}
	return factory.CreateDirector(w)
}

func GetPacing(w donburi.World) *components.PacingData {
	return components.Pacing.Get(GetOrCreateDirector(w))
}

func GetGaze(w donburi.World) *components.GazeData {
	return components.Gaze.Get(GetOrCreateDirector(w))
}

func GetFiring(w donburi.World) *components.FiringData {
	return components.Firing.Get(GetOrCreateDirector(w))
}

// GetOrCreateSession returns the singleton session state, creating it if needed
func GetOrCreateSession(w donburi.World) *components.SessionData {
	if e, ok := components.Session.First(w); ok {
		return components.Session.Get(e)
	}
	return components.Session.Get(factory.CreateSession(w))
}

// SetTrackedGaze stores the latest eye and gaze positions. Nil eyes become
// unknown; a nil gaze keeps the previous gaze point.
func SetTrackedGaze(w donburi.World, left, right, gaze *dmath.Vec2) {
	g := GetGaze(w)
	g.LeftEye = copyVec(left)
	g.RightEye = copyVec(right)
	if gaze != nil {
		g.Gaze = copyVec(gaze)
	}
}

func copyVec(v *dmath.Vec2) *dmath.Vec2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ResetWorld removes every target, beam and explosion and puts the director
// back to its initial state.
func ResetWorld(w donburi.World) {
	var toRemove []*donburi.Entry

	tags.Target.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	tags.Beam.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	tags.Explosion.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	for _, e := range toRemove {
		removeEntry(e)
	}

	director := GetOrCreateDirector(w)
	components.Pacing.SetValue(director, factory.NewPacing())
	components.Gaze.SetValue(director, components.GazeData{})
	components.Firing.SetValue(director, components.FiringData{})
}

// removeEntry drops an entity, taking its bounding box out of the culling space first
func removeEntry(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
