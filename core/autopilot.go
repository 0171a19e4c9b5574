package core

import (
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/sensor"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// gazeFollow is the fraction of the remaining distance the gaze covers per read
const gazeFollow = 0.5

// Autopilot is a sensor.Source that plays the game from published snapshots.
// Its eyes stay at fixed positions; its gaze drifts toward the chosen target
// and it pulls the trigger once it has been on target for the reaction time.
type Autopilot struct {
	snapshot func() *Snapshot

	leftEye  dmath.Vec2
	rightEye dmath.Vec2
	gaze     dmath.Vec2

	reaction      time.Duration
	tolerance     float64
	bombThreshold float64

	locked   donburi.Entity
	hasLock  bool
	lockedAt time.Duration
}

// NewAutopilot reads game state through snapshot, usually GameLoop.Latest.
func NewAutopilot(snapshot func() *Snapshot) *Autopilot {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	a := &Autopilot{
		snapshot:      snapshot,
		leftEye:       dmath.Vec2{X: w * cfg.Sensor.LeftEyeX, Y: h * cfg.Sensor.EyeY},
		rightEye:      dmath.Vec2{X: w * cfg.Sensor.RightEyeX, Y: h * cfg.Sensor.EyeY},
		reaction:      cfg.Sensor.AutopilotReaction,
		tolerance:     cfg.Sensor.AutopilotAimTolerance,
		bombThreshold: cfg.Sensor.AutopilotBombThreshold,
	}
	a.gaze = gamemath.Midpoint(a.leftEye, a.rightEye)
	return a
}

func (a *Autopilot) Read(now time.Duration) sensor.Reading {
	left, right := a.leftEye, a.rightEye
	reading := sensor.Reading{
		FaceDetected: true,
		LeftEye:      &left,
		RightEye:     &right,
	}

	var target *TargetView
	if snap := a.snapshot(); snap != nil && !snap.Paused && !snap.GameOver {
		target = a.choose(snap.Targets)
	}

	if target == nil {
		a.hasLock = false
		gaze := a.gaze
		reading.Gaze = &gaze
		return reading
	}

	if !a.hasLock || a.locked != target.Entity {
		a.locked = target.Entity
		a.hasLock = true
		a.lockedAt = now
	}

	a.gaze = gamemath.Add(a.gaze, gamemath.Scale(gamemath.Sub(target.Position, a.gaze), gazeFollow))
	gaze := a.gaze
	reading.Gaze = &gaze

	onTarget := gamemath.Distance(a.gaze, target.Position) <= a.tolerance
	reading.TriggerActive = onTarget && now-a.lockedAt >= a.reaction
	return reading
}

// choose picks the bomb closest to the eyes when one is within the threshold,
// otherwise the on-screen normal target closest to the eyes.
func (a *Autopilot) choose(targets []TargetView) *TargetView {
	mid := gamemath.Midpoint(a.leftEye, a.rightEye)

	var best *TargetView
	bestDist := 0.0
	bombFound := false

	for i := range targets {
		t := &targets[i]
		if !onScreen(t.Position) {
			continue
		}
		d := gamemath.Distance(mid, t.Position)
		threat := t.Kind == components.TargetBomb && d < a.bombThreshold+t.Radius

		switch {
		case threat && (!bombFound || d < bestDist):
			best, bestDist, bombFound = t, d, true
		case !threat && !bombFound && t.Points > 0 && (best == nil || d < bestDist):
			best, bestDist = t, d
		}
	}
	return best
}

func onScreen(p dmath.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(cfg.C.Width) && p.Y <= float64(cfg.C.Height)
}
