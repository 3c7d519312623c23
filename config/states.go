package config

import "github.com/yohamta/donburi/ecs"

// Mode is the top-level session state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeOver
)

// GameMode selects how the arena is populated.
type GameMode int

const (
	GameModeTarget GameMode = iota
	GameModeSurvival
)

// Default is the render layer used for all entities and renderers.
var Default = ecs.LayerID(0)
