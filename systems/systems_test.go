package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/automoto/gazelaser/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestWorld(t *testing.T, withSpace bool) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	if withSpace {
		factory.CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.C.CellSize)
	}
	GetOrCreateDirector(w)
	return w
}

func addTarget(w donburi.World, kind components.TargetKind, x, y, radius float64) *donburi.Entry {
	points := 0
	if kind == components.TargetNormal {
		points = TargetPoints(radius)
	}
	return factory.CreateTarget(w, components.TargetData{
		Position: dmath.Vec2{X: x, Y: y},
		Radius:   radius,
		Kind:     kind,
		Points:   points,
		Lifetime: 10 * time.Second,
	})
}

func vec(x, y float64) *dmath.Vec2 {
	return &dmath.Vec2{X: x, Y: y}
}

func countBeams(w donburi.World) (fired, aim int) {
	tags.Beam.Each(w, func(e *donburi.Entry) {
		if components.Beam.Get(e).IsAim {
			aim++
		} else {
			fired++
		}
	})
	return fired, aim
}

func countExplosions(w donburi.World) int {
	n := 0
	tags.Explosion.Each(w, func(e *donburi.Entry) {
		n++
	})
	return n
}

func TestDetectCollisionsScenarios(t *testing.T) {
	for _, withSpace := range []bool{true, false} {
		name := "bounds"
		if withSpace {
			name = "space"
		}
		t.Run(name, func(t *testing.T) {
			w := newTestWorld(t, withSpace)
			hit := addTarget(w, components.TargetNormal, 100, 0, 10)
			addTarget(w, components.TargetNormal, 100, 50, 10)
			beam := factory.CreateFiredBeam(w, dmath.Vec2{}, dmath.Vec2{X: 1}, 0)

			hits := DetectCollisions(w)
			require.Len(t, hits, 1)
			assert.Equal(t, beam.Entity(), hits[0].Beam)
			assert.Equal(t, hit.Entity(), hits[0].Target)
		})
	}
}

func TestDetectCollisionsIgnoresAimBeams(t *testing.T) {
	w := newTestWorld(t, true)
	addTarget(w, components.TargetNormal, 300, 300, 20)
	factory.CreateAimBeam(w, dmath.Vec2{X: 0, Y: 300}, dmath.Vec2{X: 1}, 0)

	assert.Empty(t, DetectCollisions(w))
}

func TestDetectCollisionsEmptyWithoutTargets(t *testing.T) {
	w := newTestWorld(t, true)
	factory.CreateFiredBeam(w, dmath.Vec2{}, dmath.Vec2{X: 1}, 0)
	assert.Empty(t, DetectCollisions(w))
}

func TestDetectCollisionsMultipleHits(t *testing.T) {
	w := newTestWorld(t, true)
	a := addTarget(w, components.TargetNormal, 200, 360, 20)
	b := addTarget(w, components.TargetBomb, 600, 360, 20)
	factory.CreateFiredBeam(w, dmath.Vec2{X: 0, Y: 360}, dmath.Vec2{X: 1}, 0)
	factory.CreateFiredBeam(w, dmath.Vec2{X: 200, Y: 0}, dmath.Vec2{Y: 1}, 0)

	hits := DetectCollisions(w)
	require.Len(t, hits, 3)

	byTarget := map[donburi.Entity]int{}
	for _, h := range hits {
		byTarget[h.Target]++
	}
	assert.Equal(t, 2, byTarget[a.Entity()])
	assert.Equal(t, 1, byTarget[b.Entity()])
}

func TestDetectCollisionsCullsOffscreenTargets(t *testing.T) {
	for _, withSpace := range []bool{true, false} {
		w := newTestWorld(t, withSpace)
		addTarget(w, components.TargetNormal, -100, 300, 10)
		onscreen := addTarget(w, components.TargetNormal, 100, 300, 10)
		factory.CreateFiredBeam(w, dmath.Vec2{X: -200, Y: 300}, dmath.Vec2{X: 1}, 0)

		hits := DetectCollisions(w)
		require.Len(t, hits, 1)
		assert.Equal(t, onscreen.Entity(), hits[0].Target)
	}
}

func TestDetectCollisionsAtScreenEdges(t *testing.T) {
	width := float64(cfg.C.Width)
	tests := []struct {
		name         string
		x, y         float64
		origin, dir  dmath.Vec2
		expectedHits int
	}{
		{"sliver past left edge", -19.5, 300, dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{Y: 1}, 1},
		{"just off left edge", -20.5, 300, dmath.Vec2{X: -1, Y: 0}, dmath.Vec2{Y: 1}, 0},
		{"touching right edge", width + 20, 300, dmath.Vec2{X: width, Y: 0}, dmath.Vec2{Y: 1}, 1},
		{"sliver past top edge", 640, -19.5, dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 1}, 1},
	}
	for _, tt := range tests {
		for _, withSpace := range []bool{true, false} {
			w := newTestWorld(t, withSpace)
			addTarget(w, components.TargetNormal, tt.x, tt.y, 20)
			factory.CreateFiredBeam(w, tt.origin, tt.dir, 0)

			assert.Len(t, DetectCollisions(w), tt.expectedHits, "%s (space=%v)", tt.name, withSpace)
		}
	}
}

func TestDetectCollisionsFollowsMovingTargets(t *testing.T) {
	w := newTestWorld(t, true)
	tg := addTarget(w, components.TargetNormal, 640, 100, 20)
	components.Target.Get(tg).Velocity = dmath.Vec2{Y: 100}
	factory.CreateFiredBeam(w, dmath.Vec2{X: 0, Y: 600}, dmath.Vec2{X: 1}, 0)

	assert.Empty(t, DetectCollisions(w))
	for i := 0; i < 5; i++ {
		UpdateTargets(w, 0)
	}
	assert.Len(t, DetectCollisions(w), 1)
}

func TestRemoveTargetIsIdempotent(t *testing.T) {
	w := newTestWorld(t, true)
	tg := addTarget(w, components.TargetNormal, 100, 100, 20)

	assert.True(t, RemoveTarget(w, tg.Entity(), time.Second))
	assert.False(t, RemoveTarget(w, tg.Entity(), time.Second))

	assert.Equal(t, 1, countExplosions(w))
	assert.Equal(t, 0, CountTargets(w))
	assert.Empty(t, VisibleTargets(w))
}

func TestRemoveTargetExplosionKinds(t *testing.T) {
	w := newTestWorld(t, true)
	normal := addTarget(w, components.TargetNormal, 100, 100, 20)
	bomb := addTarget(w, components.TargetBomb, 300, 100, 20)

	RemoveTarget(w, normal.Entity(), 0)
	RemoveTarget(w, bomb.Entity(), 0)

	var sizes []float64
	tags.Explosion.Each(w, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		sizes = append(sizes, ex.MaxSize)
		if ex.Bomb {
			assert.Equal(t, cfg.Explosion.BombDuration, ex.Duration)
			assert.Equal(t, cfg.Explosion.BombColor, ex.Color)
			assert.Equal(t, dmath.Vec2{X: 300, Y: 100}, ex.Position)
		} else {
			assert.Equal(t, cfg.Explosion.NormalDuration, ex.Duration)
			assert.Equal(t, dmath.Vec2{X: 100, Y: 100}, ex.Position)
		}
	})
	assert.ElementsMatch(t, []float64{50, 100}, sizes)
}

func TestUpdateTargetsDropsInactive(t *testing.T) {
	w := newTestWorld(t, true)
	gone := addTarget(w, components.TargetNormal, 640, 360, 20)
	components.Target.Get(gone).Velocity = dmath.Vec2{X: 2000}
	addTarget(w, components.TargetNormal, 100, 100, 20)

	assert.False(t, UpdateTargets(w, time.Second))
	assert.Equal(t, 1, CountTargets(w))
	assert.False(t, w.Valid(gone.Entity()))
	assert.Equal(t, 0, countExplosions(w), "expired targets leave no explosion")
}

func TestUpdateTargetsReportsBombAtEye(t *testing.T) {
	w := newTestWorld(t, true)
	SetTrackedGaze(w, vec(500, 300), vec(560, 300), vec(600, 100))

	bomb := addTarget(w, components.TargetBomb, 500, 300+25, 20)
	addTarget(w, components.TargetNormal, 560, 300, 20)

	assert.True(t, UpdateTargets(w, 0))
	assert.True(t, w.Valid(bomb.Entity()), "the bomb stays in play")
	assert.True(t, UpdateTargets(w, 0), "and keeps signalling while it lingers")
}

func TestUpdateTargetsIgnoresUnknownEyes(t *testing.T) {
	w := newTestWorld(t, true)
	SetTrackedGaze(w, nil, nil, nil)
	addTarget(w, components.TargetBomb, 500, 300, 20)
	assert.False(t, UpdateTargets(w, 0))
}

func TestSetTrackedGazeKeepsGazeWhenNil(t *testing.T) {
	w := newTestWorld(t, false)
	SetTrackedGaze(w, vec(1, 2), vec(3, 4), vec(5, 6))
	SetTrackedGaze(w, nil, vec(3, 4), nil)

	g := GetGaze(w)
	assert.Nil(t, g.LeftEye)
	assert.Equal(t, vec(3, 4), g.RightEye)
	assert.Equal(t, vec(5, 6), g.Gaze)
}

func TestSetTrackedGazeCopiesInput(t *testing.T) {
	w := newTestWorld(t, false)
	left := vec(1, 2)
	SetTrackedGaze(w, left, nil, nil)
	left.X = 99
	assert.Equal(t, 1.0, GetGaze(w).LeftEye.X)
}

func TestUpdateBeamsExpiresFiredBeams(t *testing.T) {
	w := newTestWorld(t, false)
	factory.CreateFiredBeam(w, dmath.Vec2{}, dmath.Vec2{X: 1}, 0)
	factory.CreateAimBeam(w, dmath.Vec2{}, dmath.Vec2{X: 1}, 0)

	UpdateBeams(w, 300*time.Millisecond)
	fired, aim := countBeams(w)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, aim)

	UpdateBeams(w, 301*time.Millisecond)
	fired, aim = countBeams(w)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, aim)
}

func TestUpdateExplosionsDropsFinished(t *testing.T) {
	w := newTestWorld(t, false)
	factory.CreateExplosion(w, dmath.Vec2{}, false, 0)
	factory.CreateExplosion(w, dmath.Vec2{}, true, 0)

	UpdateExplosions(w, 600*time.Millisecond)
	assert.Equal(t, 1, countExplosions(w))

	UpdateExplosions(w, 1100*time.Millisecond)
	assert.Equal(t, 0, countExplosions(w))
}

func TestAimBeamSlots(t *testing.T) {
	w := newTestWorld(t, false)

	UpdateAimBeams(w, 0)
	_, aim := countBeams(w)
	assert.Equal(t, 0, aim, "no aim beams without a gaze point")

	SetTrackedGaze(w, vec(600, 360), vec(680, 360), vec(640, 100))
	UpdateAimBeams(w, 0)
	_, aim = countBeams(w)
	assert.Equal(t, 2, aim)

	slots := GetFiring(w).AimSlots
	require.True(t, slots[0].Held)
	left := components.Beam.Get(w.Entry(slots[0].Beam))
	assert.Equal(t, dmath.Vec2{X: 600, Y: 360}, left.Origin)

	// moved eye: same beam, new origin
	SetTrackedGaze(w, vec(610, 360), vec(680, 360), nil)
	UpdateAimBeams(w, 0)
	assert.Equal(t, slots[0].Beam, GetFiring(w).AimSlots[0].Beam)
	assert.Equal(t, dmath.Vec2{X: 610, Y: 360}, components.Beam.Get(w.Entry(slots[0].Beam)).Origin)

	// lost the right eye
	SetTrackedGaze(w, vec(610, 360), nil, nil)
	UpdateAimBeams(w, 0)
	_, aim = countBeams(w)
	assert.Equal(t, 1, aim)
	assert.False(t, GetFiring(w).AimSlots[1].Held)
}

func TestFireBeamReplacesAimBeams(t *testing.T) {
	w := newTestWorld(t, false)
	SetTrackedGaze(w, vec(600, 360), vec(680, 360), vec(640, 100))
	UpdateAimBeams(w, 0)

	require.True(t, FireBeam(w, time.Second, vec(600, 360), vec(640, 100)))
	fired, aim := countBeams(w)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, aim)
	assert.True(t, IsFiring(w))
	assert.Equal(t, time.Second+cfg.Beam.FiredDuration, GetFiring(w).Expiry)

	// aim beams stay away while firing
	UpdateAimBeams(w, time.Second)
	_, aim = countBeams(w)
	assert.Equal(t, 0, aim)
}

func TestFireBeamIgnoresUnknownInput(t *testing.T) {
	w := newTestWorld(t, false)
	assert.False(t, FireBeam(w, 0, nil, vec(1, 1)))
	assert.False(t, FireBeam(w, 0, vec(1, 1), nil))
	assert.False(t, IsFiring(w))
	fired, _ := countBeams(w)
	assert.Equal(t, 0, fired)
}

func TestUpdateFiringExpires(t *testing.T) {
	w := newTestWorld(t, false)
	FireBeam(w, 0, vec(0, 0), vec(1, 0))

	UpdateFiring(w, 299*time.Millisecond)
	assert.True(t, IsFiring(w))
	UpdateFiring(w, 300*time.Millisecond)
	assert.False(t, IsFiring(w))
}

func TestTryFireCooldown(t *testing.T) {
	w := newTestWorld(t, false)
	SetTrackedGaze(w, vec(600, 360), vec(680, 360), vec(640, 100))

	assert.True(t, TryFire(w, 0))
	fired, _ := countBeams(w)
	assert.Equal(t, 2, fired)

	assert.False(t, TryFire(w, 100*time.Millisecond))
	assert.False(t, TryFire(w, 300*time.Millisecond))
	assert.True(t, TryFire(w, 310*time.Millisecond))
}

func TestTryFireWithoutGazeDoesNotArmCooldown(t *testing.T) {
	w := newTestWorld(t, false)
	assert.False(t, TryFire(w, 0))
	assert.False(t, GetFiring(w).HasFired)
}

func TestUpdateSpawnerPacing(t *testing.T) {
	w := newTestWorld(t, true)
	rng := rand.New(rand.NewSource(1))

	assert.Nil(t, UpdateSpawner(w, 5*time.Second, rng), "first tick only arms the clock")
	assert.Nil(t, UpdateSpawner(w, 6*time.Second, rng), "spawn needs strictly more than the interval")

	spawned := UpdateSpawner(w, 6*time.Second+time.Millisecond, rng)
	require.NotNil(t, spawned)
	assert.Equal(t, 1, CountTargets(w))

	p := GetPacing(w)
	assert.Equal(t, 990*time.Millisecond, p.SpawnInterval)
	assert.InDelta(t, 0.202, p.BombProbability, 1e-12)
	assert.Equal(t, 6*time.Second+time.Millisecond, p.LastSpawn)
}

func TestNewTargetDataPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gaze := &components.GazeData{}
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	center := dmath.Vec2{X: width / 2, Y: height / 2}

	for i := 0; i < 500; i++ {
		kind := components.TargetKind(i % 2)
		d := NewTargetData(rng, kind, gaze, time.Second)

		assert.GreaterOrEqual(t, d.Radius, 20.0)
		assert.LessOrEqual(t, d.Radius, 50.0)
		assert.GreaterOrEqual(t, d.Lifetime, 5*time.Second)
		assert.LessOrEqual(t, d.Lifetime, 10*time.Second)

		if kind == components.TargetBomb {
			assert.Equal(t, 0, d.Points)
			assert.Equal(t, cfg.Target.BombColor, d.Color)
		} else {
			assert.Equal(t, TargetPoints(d.Radius), d.Points)
			assert.Greater(t, d.Points, 0)
		}

		// one radius outside an edge
		onEdge := d.Position.Y == -d.Radius || d.Position.Y == height+d.Radius ||
			d.Position.X == -d.Radius || d.Position.X == width+d.Radius
		assert.True(t, onEdge, "spawned at %v", d.Position)

		// heading for the screen center
		toCenter := dmath.Vec2{X: center.X - d.Position.X, Y: center.Y - d.Position.Y}
		assert.Greater(t, d.Velocity.X*toCenter.X+d.Velocity.Y*toCenter.Y, 0.0)

		speed := d.Velocity.X*d.Velocity.X + d.Velocity.Y*d.Velocity.Y
		assert.GreaterOrEqual(t, speed, 1.0-1e-9)
		assert.LessOrEqual(t, speed, 4.0+1e-9)
	}
}

func TestNewTargetDataAimsAtEyes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gaze := &components.GazeData{LeftEye: vec(100, 100), RightEye: vec(140, 100)}
	mid := dmath.Vec2{X: 120, Y: 100}

	d := NewTargetData(rng, components.TargetNormal, gaze, 0)
	toMid := dmath.Vec2{X: mid.X - d.Position.X, Y: mid.Y - d.Position.Y}
	cross := d.Velocity.X*toMid.Y - d.Velocity.Y*toMid.X
	assert.InDelta(t, 0, cross, 1e-6)
}

func TestTargetPoints(t *testing.T) {
	assert.Equal(t, 50, TargetPoints(20))
	assert.Equal(t, 20, TargetPoints(50))
	assert.Equal(t, 29, TargetPoints(35))
}

func TestResetWorld(t *testing.T) {
	w := newTestWorld(t, true)
	rng := rand.New(rand.NewSource(1))
	SetTrackedGaze(w, vec(600, 360), vec(680, 360), vec(640, 100))
	UpdateSpawner(w, 0, rng)
	SpawnTarget(w, 0, rng)
	UpdateAimBeams(w, 0)
	FireBeam(w, 0, vec(600, 360), vec(640, 100))
	factory.CreateExplosion(w, dmath.Vec2{}, false, 0)
	GetPacing(w).SpawnInterval = 600 * time.Millisecond

	ResetWorld(w)

	assert.Equal(t, 0, CountTargets(w))
	fired, aim := countBeams(w)
	assert.Equal(t, 0, fired+aim)
	assert.Equal(t, 0, countExplosions(w))
	assert.Empty(t, VisibleTargets(w))
	assert.Equal(t, cfg.Pacing.InitialSpawnInterval, GetPacing(w).SpawnInterval)
	assert.False(t, GetPacing(w).Armed)
	assert.False(t, IsFiring(w))
	assert.Nil(t, GetGaze(w).Gaze)
}
