package tags

import "github.com/yohamta/donburi"

var (
	Target    = donburi.NewTag().SetName("Target")
	Beam      = donburi.NewTag().SetName("Beam")
	AimBeam   = donburi.NewTag().SetName("AimBeam")
	Explosion = donburi.NewTag().SetName("Explosion")
	Director  = donburi.NewTag().SetName("Director")
)

// Resolv tags for visibility culling
const (
	ResolvTarget = "target"
	ResolvScreen = "screen"
)
