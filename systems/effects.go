package systems

import (
	"math"

	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	"github.com/yohamta/donburi"
)

// GetOrCreateScreenShake returns the singleton screen shake state
func GetOrCreateScreenShake(w donburi.World) *components.ScreenShakeData {
	if e, ok := components.ScreenShake.First(w); ok {
		return components.ScreenShake.Get(e)
	}
	return components.ScreenShake.Get(archetypes.ScreenShake.Spawn(w))
}

// UpdateScreenShake advances the shake by one frame and recomputes its offset
func UpdateScreenShake(w donburi.World) {
	shake := GetOrCreateScreenShake(w)
	if !shake.Active() {
		shake.OffsetX, shake.OffsetY = 0, 0
		return
	}

	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity
}

// TriggerScreenShake starts a screen shake; a weaker shake never overrides a running stronger one
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	shake := GetOrCreateScreenShake(w)
	if shake.Active() && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

// ScreenShakeOffset returns the current playfield offset
func ScreenShakeOffset(w donburi.World) (float64, float64) {
	if e, ok := components.ScreenShake.First(w); ok {
		shake := components.ScreenShake.Get(e)
		return shake.OffsetX, shake.OffsetY
	}
	return 0, 0
}
