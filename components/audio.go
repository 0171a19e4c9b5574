package components

import (
	cfg "github.com/automoto/gazelaser/config"
	"github.com/yohamta/donburi"
)

// AudioData holds sound effects queued during a frame until the audio system plays them
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
