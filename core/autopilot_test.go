package core

import (
	"testing"
	"time"

	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func fixedSnapshot(targets ...TargetView) func() *Snapshot {
	snap := &Snapshot{Targets: targets}
	return func() *Snapshot { return snap }
}

func TestAutopilotIdleWithoutTargets(t *testing.T) {
	a := NewAutopilot(func() *Snapshot { return nil })
	r := a.Read(0)

	assert.True(t, r.FaceDetected)
	require.NotNil(t, r.LeftEye)
	require.NotNil(t, r.RightEye)
	require.NotNil(t, r.Gaze)
	assert.False(t, r.TriggerActive)
	assert.InDelta(t, 640, r.Gaze.X, 1e-9)
	assert.InDelta(t, 360, r.Gaze.Y, 1e-9)
}

func TestAutopilotAimsThenFires(t *testing.T) {
	target := TargetView{
		Entity:   donburi.Entity(7),
		Position: dmath.Vec2{X: 800, Y: 300},
		Radius:   20,
		Kind:     components.TargetNormal,
		Points:   50,
	}
	a := NewAutopilot(fixedSnapshot(target))

	first := a.Read(0)
	assert.False(t, first.TriggerActive)

	fired := -1
	for i := 1; i <= 30; i++ {
		if a.Read(time.Duration(i) * 10 * time.Millisecond).TriggerActive {
			fired = i
			break
		}
	}
	require.NotEqual(t, -1, fired)
	assert.GreaterOrEqual(t, time.Duration(fired)*10*time.Millisecond, a.reaction, "waits for the reaction time")
	assert.LessOrEqual(t, gamemath.Distance(a.gaze, target.Position), a.tolerance)
}

func TestAutopilotPrefersNearbyBombs(t *testing.T) {
	normal := TargetView{
		Entity:   donburi.Entity(1),
		Position: dmath.Vec2{X: 660, Y: 340},
		Radius:   20,
		Kind:     components.TargetNormal,
		Points:   50,
	}
	bomb := TargetView{
		Entity:   donburi.Entity(2),
		Position: dmath.Vec2{X: 640, Y: 560},
		Radius:   30,
		Kind:     components.TargetBomb,
	}
	farBomb := TargetView{
		Entity:   donburi.Entity(3),
		Position: dmath.Vec2{X: 100, Y: 100},
		Radius:   30,
		Kind:     components.TargetBomb,
	}

	a := NewAutopilot(fixedSnapshot(normal, farBomb, bomb))
	chosen := a.choose([]TargetView{normal, farBomb, bomb})
	require.NotNil(t, chosen)
	assert.Equal(t, bomb.Entity, chosen.Entity)

	chosen = a.choose([]TargetView{normal, farBomb})
	require.NotNil(t, chosen)
	assert.Equal(t, normal.Entity, chosen.Entity)
}

func TestAutopilotSkipsOffscreenTargets(t *testing.T) {
	a := NewAutopilot(nil)
	chosen := a.choose([]TargetView{{
		Entity:   donburi.Entity(1),
		Position: dmath.Vec2{X: -20, Y: 300},
		Radius:   20,
		Kind:     components.TargetNormal,
		Points:   50,
	}})
	assert.Nil(t, chosen)
}

// The autopilot plugged into the loop should shoot something within half a minute.
func TestAutopilotScoresInLoop(t *testing.T) {
	session := newTestSession()
	var loop *GameLoop
	pilot := NewAutopilot(func() *Snapshot { return loop.Latest() })
	loop = NewGameLoop(session, pilot, 60)

	for i := 0; i < 30*60; i++ {
		loop.Step(time.Duration(i) * time.Second / 60)
	}
	assert.Positive(t, session.State().Score)
}
