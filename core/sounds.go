package core

import cfg "github.com/automoto/gazelaser/config"

// Sounds lists the effects a step should play, in order: the shot, one
// explosion per destroyed target, then the game-over sting.
func (r StepResult) Sounds() []cfg.SoundID {
	if r.Skipped {
		return nil
	}

	var sounds []cfg.SoundID
	if r.Fired {
		sounds = append(sounds, cfg.SoundLaser)
	}
	for _, hit := range r.Hits {
		if hit.Bomb {
			sounds = append(sounds, cfg.SoundBombExplosion)
		} else {
			sounds = append(sounds, cfg.SoundExplosion)
		}
	}
	if r.GameOver {
		sounds = append(sounds, cfg.SoundGameOver)
	}
	return sounds
}
