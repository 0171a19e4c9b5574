package factory

import (
	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the culling grid covering a width x height screen, plus
// the screen object used to query it. The grid is rounded up to whole cells.
func CreateSpace(w donburi.World, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	cols := (width + cellSize - 1) / cellSize
	rows := (height + cellSize - 1) / cellSize
	spaceData := resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize)
	components.Space.Set(space, spaceData)

	screen := resolv.NewObject(0, 0, float64(width), float64(height), tags.ResolvScreen)
	screen.SetShape(resolv.NewRectangle(0, 0, float64(width), float64(height)))
	screen.Data = space
	spaceData.Add(screen)
	components.Screen.SetValue(space, components.ScreenData{Object: screen})

	return space
}
