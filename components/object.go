package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a target's bounding box in the culling space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv grid covering the screen
var Space = donburi.NewComponentType[resolv.Space]()

// ScreenData is the object spanning the whole screen used to query visible targets
type ScreenData struct {
	*resolv.Object
}

var Screen = donburi.NewComponentType[ScreenData]()
