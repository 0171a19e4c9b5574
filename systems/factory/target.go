package factory

import (
	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateTarget spawns a target and registers its bounding box in the culling space
func CreateTarget(w donburi.World, data components.TargetData) *donburi.Entry {
	target := archetypes.Target.Spawn(w)

	data.Active = true
	components.Target.SetValue(target, data)

	x, y, bw, bh := data.CullBounds()
	obj := resolv.NewObject(x, y, bw, bh, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})

	// Add to culling space
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return target
}
