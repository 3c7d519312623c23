package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionReload
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key and mouse-button bindings for an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionReload: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionWeapon1: {
				Keys: []ebiten.Key{ebiten.Key1},
			},
			ActionWeapon2: {
				Keys: []ebiten.Key{ebiten.Key2},
			},
			ActionWeapon3: {
				Keys: []ebiten.Key{ebiten.Key3},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
