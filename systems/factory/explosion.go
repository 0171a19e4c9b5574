package factory

import (
	"time"

	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateExplosion spawns the explosion left behind by a removed target.
// Bomb explosions are larger, slower and red.
func CreateExplosion(w donburi.World, pos dmath.Vec2, bomb bool, now time.Duration) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(w)

	maxSize := cfg.Explosion.NormalMaxSize
	duration := cfg.Explosion.NormalDuration
	color := cfg.Explosion.NormalColor
	if bomb {
		maxSize = cfg.Explosion.BombMaxSize
		duration = cfg.Explosion.BombDuration
		color = cfg.Explosion.BombColor
	}

	data := components.NewExplosion(pos, cfg.Explosion.StartSize, maxSize, color, now, duration)
	data.Bomb = bomb
	components.Explosion.SetValue(explosion, data)

	return explosion
}
