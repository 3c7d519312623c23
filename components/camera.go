package components

import (
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person camera: the player's position and
// orientation. Forward/right vectors are derived, never stored.
type CameraData struct {
	Position gamemath.Vector3
	Yaw      float64 // degrees, unbounded
	Pitch    float64 // degrees, clamped by the input layer
}

func (c *CameraData) Forward() gamemath.Vector3 {
	return gamemath.Forward(c.Yaw, c.Pitch)
}

func (c *CameraData) Right() gamemath.Vector3 {
	return gamemath.Right(c.Yaw, c.Pitch)
}

var Camera = donburi.NewComponentType[CameraData]()
