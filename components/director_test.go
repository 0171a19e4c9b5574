package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestPacingDue(t *testing.T) {
	p := PacingData{SpawnInterval: time.Second}
	assert.False(t, p.Due(time.Hour), "an unarmed clock never fires")

	p.Armed = true
	p.LastSpawn = time.Second
	assert.False(t, p.Due(2*time.Second))
	assert.True(t, p.Due(2*time.Second+time.Nanosecond))
}

func TestPacingAdvanceClamps(t *testing.T) {
	p := PacingData{SpawnInterval: 510 * time.Millisecond, BombProbability: 0.399, Armed: true}
	p.Advance(time.Second, 0.9, 500*time.Millisecond, 1.5, 0.4)

	assert.Equal(t, 500*time.Millisecond, p.SpawnInterval)
	assert.Equal(t, 0.4, p.BombProbability)
	assert.Equal(t, time.Second, p.LastSpawn)
	assert.Equal(t, 1, p.Spawned)
}

func TestPacingMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := PacingData{SpawnInterval: time.Second, BombProbability: 0.2, Armed: true}
		n := rapid.IntRange(1, 200).Draw(t, "spawns")

		for i := 0; i < n; i++ {
			prevInterval, prevBomb := p.SpawnInterval, p.BombProbability
			p.Advance(time.Duration(i)*time.Second, 0.99, 500*time.Millisecond, 1.01, 0.4)

			if p.SpawnInterval < 500*time.Millisecond || p.BombProbability > 0.4 {
				t.Fatalf("out of bounds after %d spawns: %v %v", i+1, p.SpawnInterval, p.BombProbability)
			}
			if prevInterval > 500*time.Millisecond && p.SpawnInterval >= prevInterval {
				t.Fatalf("interval did not decrease: %v -> %v", prevInterval, p.SpawnInterval)
			}
			if prevBomb < 0.4 && p.BombProbability <= prevBomb {
				t.Fatalf("bomb probability did not grow: %v -> %v", prevBomb, p.BombProbability)
			}
		}
	})
}

func TestGazeDataEyes(t *testing.T) {
	left := dmath.Vec2{X: 100, Y: 200}
	right := dmath.Vec2{X: 300, Y: 200}
	center := dmath.Vec2{X: 640, Y: 360}

	g := GazeData{LeftEye: &left}
	assert.Len(t, g.KnownEyes(), 1)
	assert.Equal(t, center, g.AimPoint(center))

	g.RightEye = &right
	assert.Equal(t, []dmath.Vec2{left, right}, g.KnownEyes())
	assert.Equal(t, dmath.Vec2{X: 200, Y: 200}, g.AimPoint(center))
	assert.Equal(t, &right, g.Eye(1))
}

func TestFiringCooledDown(t *testing.T) {
	f := FiringData{}
	assert.True(t, f.CooledDown(0, 300*time.Millisecond))

	f.HasFired = true
	f.LastFire = 0
	assert.False(t, f.CooledDown(100*time.Millisecond, 300*time.Millisecond))
	assert.False(t, f.CooledDown(300*time.Millisecond, 300*time.Millisecond))
	assert.True(t, f.CooledDown(310*time.Millisecond, 300*time.Millisecond))
}
