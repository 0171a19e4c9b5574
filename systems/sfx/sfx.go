// Package sfx plays the queued sound effects through ebiten's audio context.
package sfx

import (
	"sync"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/sound"
	"github.com/automoto/gazelaser/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - one context per process, shared across scenes
var (
	globalAudioContext *audio.Context
	pcmCache           map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.CurrentContext()
		if globalAudioContext == nil {
			globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		}
		pcmCache = make(map[cfg.SoundID][]byte)
	})
}

// PreloadAllSFX synthesizes every effect up front to avoid a hitch on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.VolumeMultipliers {
		pcm(id)
	}
}

// UpdateAudio plays the sounds queued this frame unless the game is muted
func UpdateAudio(e *ecs.ECS) {
	pending := systems.DrainSFX(e.World)
	if len(pending) == 0 {
		return
	}

	muted := false
	if entry, ok := components.Settings.First(e.World); ok {
		muted = components.Settings.Get(entry).Muted
	}
	if muted {
		return
	}

	initGlobalAudio()
	for _, id := range pending {
		playSFX(id, systems.SFXVolume(id, false))
	}
}

func pcm(id cfg.SoundID) []byte {
	data, ok := pcmCache[id]
	if !ok {
		data = sound.Synthesize(id, globalAudioContext.SampleRate())
		pcmCache[id] = data
	}
	return data
}

func playSFX(id cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	data := pcm(id)
	if len(data) == 0 {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}
