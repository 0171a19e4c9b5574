package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical host action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionPause
	ActionQuit
	ActionFullscreen
	ActionDebug
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// Binding represents the keys and buttons mapped to one action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all input mappings
var Bindings = map[ActionID]Binding{
	ActionFire: {
		Keys:                   []ebiten.Key{ebiten.KeyF},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
	ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
	ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyD},
	},
	ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}
