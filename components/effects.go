package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
	Elapsed   int     // frames elapsed (for oscillation)

	// Current offset applied to everything drawn in the playfield
	OffsetX float64
	OffsetY float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// Active reports whether the shake still has frames left
func (s *ScreenShakeData) Active() bool {
	return s.Elapsed < s.Duration
}
