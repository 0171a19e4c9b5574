package systems

import (
	"time"

	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/tags"
	"github.com/yohamta/donburi"
)

// UpdateExplosions grows and shrinks explosions and drops the finished ones
func UpdateExplosions(w donburi.World, now time.Duration) {
	var toRemove []*donburi.Entry

	tags.Explosion.Each(w, func(e *donburi.Entry) {
		explosion := components.Explosion.Get(e)
		explosion.Advance(now)
		if !explosion.Active {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
