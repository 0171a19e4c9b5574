package core

import (
	"testing"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/stretchr/testify/assert"
)

func TestStepResultSounds(t *testing.T) {
	tests := []struct {
		name string
		res  StepResult
		want []cfg.SoundID
	}{
		{"quiet step", StepResult{}, nil},
		{"skipped", StepResult{Skipped: true, Fired: true}, nil},
		{"shot", StepResult{Fired: true}, []cfg.SoundID{cfg.SoundLaser}},
		{
			"shot with hits",
			StepResult{Fired: true, Hits: []ScoredHit{{Points: 50}, {Bomb: true}}},
			[]cfg.SoundID{cfg.SoundLaser, cfg.SoundExplosion, cfg.SoundBombExplosion},
		},
		{"life lost", StepResult{LifeLost: true}, nil},
		{"game over", StepResult{LifeLost: true, GameOver: true}, []cfg.SoundID{cfg.SoundGameOver}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Sounds())
		})
	}
}

func TestSessionStepSoundsForHit(t *testing.T) {
	s := newTestSession()
	placeTarget(s.Simulation(), components.TargetNormal, 640, 100, 20, 50)

	res := s.Step(0, faceReading(true))
	assert.Equal(t, []cfg.SoundID{cfg.SoundLaser, cfg.SoundExplosion}, res.Sounds())
}
