package systems

import (
	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
)

// Hit is one fired beam touching one target
type Hit struct {
	Beam   donburi.Entity
	Target donburi.Entity
}

// DetectCollisions returns every (beam, target) pair where a fired beam
// touches a visible target. A beam may hit several targets and a target may
// be hit by several beams; callers deduplicate.
func DetectCollisions(w donburi.World) []Hit {
	beams := FireableBeams(w)
	if len(beams) == 0 {
		return nil
	}

	targets := VisibleTargets(w)
	if len(targets) == 0 {
		return nil
	}

	var hits []Hit
	for _, be := range beams {
		beam := components.Beam.Get(be)
		for _, te := range targets {
			target := components.Target.Get(te)
			if !target.Active {
				continue
			}
			if gamemath.SegmentIntersectsCircle(beam.Origin, beam.End, target.Position, target.Radius) {
				hits = append(hits, Hit{Beam: be.Entity(), Target: te.Entity()})
			}
		}
	}
	return hits
}

// VisibleTargets returns targets whose bounding box overlaps the screen.
// With a culling space present the screen object's broadphase query narrows
// the candidates before the bounds check.
func VisibleTargets(w donburi.World) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return visibleByBounds(w)
	}

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	screen := components.Screen.Get(spaceEntry)
	check := screen.Check(0, 0, tags.ResolvTarget)
	if check == nil {
		return nil
	}

	var visible []*donburi.Entry
	seen := make(map[donburi.Entity]struct{})
	for _, obj := range check.ObjectsByTags(tags.ResolvTarget) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() {
			continue
		}
		if _, dup := seen[e.Entity()]; dup {
			continue
		}
		seen[e.Entity()] = struct{}{}
		if components.Target.Get(e).OnScreen(width, height) {
			visible = append(visible, e)
		}
	}
	return visible
}

func visibleByBounds(w donburi.World) []*donburi.Entry {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	var visible []*donburi.Entry
	tags.Target.Each(w, func(e *donburi.Entry) {
		if components.Target.Get(e).OnScreen(width, height) {
			visible = append(visible, e)
		}
	})
	return visible
}
