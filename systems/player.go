package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies mouse look and WASD movement to the camera.
// Movement is confined to the ground plane: the camera's forward vector is
// flattened before use so pitch never produces vertical drift.
func UpdatePlayer(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	dt := GetDT(e)

	camera.Yaw += input.LookDX * cfg.Player.MouseSensitivity
	camera.Pitch -= input.LookDY * cfg.Player.MouseSensitivity
	camera.Pitch = gamemath.Clamp(camera.Pitch, cfg.Player.PitchMin, cfg.Player.PitchMax)

	move := moveVector(camera, input)
	if move.Length() == 0 {
		return
	}
	step := move.Normalize().Scale(cfg.Player.MoveSpeed * dt)

	obj := components.Object.Get(cameraEntry)

	// Per-axis sweep so sliding along a wall works.
	if collision := obj.Check(step.X, 0, tags.ResolvSolid); collision == nil {
		obj.X += step.X
	}
	if collision := obj.Check(0, step.Z, tags.ResolvSolid); collision == nil {
		obj.Y += step.Z
	}

	side := cfg.Arena.GroundHalf * 2
	obj.X = gamemath.Clamp(obj.X, 0, side-obj.W)
	obj.Y = gamemath.Clamp(obj.Y, 0, side-obj.H)
	obj.Update()

	camera.Position.X = obj.X + obj.W/2 - cfg.Arena.GroundHalf
	camera.Position.Z = obj.Y + obj.H/2 - cfg.Arena.GroundHalf
}

func moveVector(camera *components.CameraData, input *components.InputData) gamemath.Vector3 {
	forward := camera.Forward().Horizontal().Normalize()
	right := camera.Right().Horizontal().Normalize()

	var move gamemath.Vector3
	if input.Current[cfg.ActionMoveForward] {
		move = move.Add(forward)
	}
	if input.Current[cfg.ActionMoveBack] {
		move = move.Sub(forward)
	}
	if input.Current[cfg.ActionMoveRight] {
		move = move.Add(right)
	}
	if input.Current[cfg.ActionMoveLeft] {
		move = move.Sub(right)
	}
	return move
}
