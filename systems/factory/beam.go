package factory

import (
	"time"

	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateFiredBeam spawns a beam from origin along direction that expires after cfg.Beam.FiredDuration
func CreateFiredBeam(w donburi.World, origin, direction dmath.Vec2, now time.Duration) *donburi.Entry {
	beam := archetypes.Beam.Spawn(w)

	data := components.NewBeam(origin, direction, cfg.Beam.Length, now)
	data.Width = cfg.Beam.FiredWidth
	data.Color = cfg.Beam.FiredColor
	data.Duration = cfg.Beam.FiredDuration
	components.Beam.SetValue(beam, data)

	return beam
}

// CreateAimBeam spawns a gaze indicator beam. Aim beams never expire and never collide.
func CreateAimBeam(w donburi.World, origin, direction dmath.Vec2, now time.Duration) *donburi.Entry {
	beam := archetypes.AimBeam.Spawn(w)

	data := components.NewBeam(origin, direction, cfg.Beam.Length, now)
	data.Width = cfg.Beam.AimWidth
	data.Color = cfg.Beam.AimColor
	data.IsAim = true
	components.Beam.SetValue(beam, data)

	return beam
}
