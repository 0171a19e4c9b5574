package components

import "github.com/yohamta/donburi"

// SettingsData stores the host toggles that survive restarts
type SettingsData struct {
	ShowDebug  bool
	Fullscreen bool
	Muted      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
