package input

import "github.com/hajimehoshi/ebiten/v2"

// State is the pressed state of every action for this and the previous frame
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps buffers and reads the keyboard, mouse and gamepads.
// Call once per frame before querying actions.
func (s *State) Poll() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				s.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}
}

// Pressed reports whether the action is held this frame
func (s *State) Pressed(a ActionID) bool {
	return s.Current[a]
}

// JustPressed reports whether the action went down this frame
func (s *State) JustPressed(a ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}
