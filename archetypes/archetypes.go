package archetypes

import (
	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
)

var (
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Beam = newArchetype(
		tags.Beam,
		components.Beam,
	)
	AimBeam = newArchetype(
		tags.Beam,
		tags.AimBeam,
		components.Beam,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
	)
	Director = newArchetype(
		tags.Director,
		components.Pacing,
		components.Gaze,
		components.Firing,
	)
	Space = newArchetype(
		components.Space,
		components.Screen,
	)
	Session = newArchetype(
		components.Session,
	)
	Settings = newArchetype(
		components.Settings,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
