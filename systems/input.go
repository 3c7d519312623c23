package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the input singleton.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	// Mouse look delta. The first sampled position only primes the
	// tracker, otherwise entering capture would produce a huge jump.
	x, y := ebiten.CursorPosition()
	if input.CursorPrimed {
		input.LookDX = float64(x - input.LastCursorX)
		input.LookDY = float64(y - input.LastCursorY)
	} else {
		input.LookDX = 0
		input.LookDY = 0
		input.CursorPrimed = true
	}
	input.LastCursorX = x
	input.LastCursorY = y
}

// GetAction computes the temporal state of an action from the two buffers.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	cur := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// ResetLook drops the cursor tracking state so the next sampled position
// primes the tracker again. Called on scene entry and pause transitions.
func ResetLook(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.CursorPrimed = false
	input.LookDX = 0
	input.LookDY = 0
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := newInputEntry(ecs)
	return components.Input.Get(entry)
}

func newInputEntry(ecs *ecs.ECS) *donburi.Entry {
	entry := ecs.World.Entry(ecs.Create(cfg.Default, components.Input))
	components.Input.SetValue(entry, components.InputData{})
	return entry
}
