package systems

import (
	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateAudio returns the singleton sound queue
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	if e, ok := components.Audio.First(w); ok {
		return components.Audio.Get(e)
	}
	return components.Audio.Get(archetypes.Audio.Spawn(w))
}

// QueueSFX adds sound effects to be played on the next audio update
func QueueSFX(w donburi.World, sounds ...cfg.SoundID) {
	if len(sounds) == 0 {
		return
	}
	a := GetOrCreateAudio(w)
	a.PendingSFX = append(a.PendingSFX, sounds...)
}

// DrainSFX returns the queued sounds and empties the queue
func DrainSFX(w donburi.World) []cfg.SoundID {
	a := GetOrCreateAudio(w)
	if len(a.PendingSFX) == 0 {
		return nil
	}
	pending := make([]cfg.SoundID, len(a.PendingSFX))
	copy(pending, a.PendingSFX)
	a.PendingSFX = a.PendingSFX[:0]
	return pending
}

// SFXVolume returns the playback volume for a sound, or 0 when muted
func SFXVolume(id cfg.SoundID, muted bool) float64 {
	if muted {
		return 0
	}
	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return volume
}
