package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundLaser
	SoundExplosion
	SoundBombExplosion
	SoundGameOver
)

func (s SoundID) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundBombExplosion:
		return "bombExplosion"
	case SoundGameOver:
		return "gameOver"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0..1, scaled per sound by Sound.VolumeMultipliers
	Muted      bool    // initial state; M toggles and the choice is saved
}

// SoundConfig contains per-sound mixing values
type SoundConfig struct {
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func setAudioDefaults() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
		Muted:      false,
	}

	Sound = SoundConfig{
		VolumeMultipliers: map[SoundID]float64{
			SoundLaser:         0.3,
			SoundExplosion:     0.5,
			SoundBombExplosion: 0.5,
			SoundGameOver:      0.7,
		},
	}
}
