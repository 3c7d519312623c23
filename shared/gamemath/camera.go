package gamemath

import "math"

var worldUp = Vector3{0, 1, 0}

// Forward derives the view direction from yaw/pitch in degrees.
// Yaw 0 looks down -Z; positive pitch looks up.
func Forward(yaw, pitch float64) Vector3 {
	yawRad := yaw * math.Pi / 180
	pitchRad := pitch * math.Pi / 180
	return Vector3{
		X: math.Sin(yawRad) * math.Cos(pitchRad),
		Y: math.Sin(pitchRad),
		Z: -math.Cos(yawRad) * math.Cos(pitchRad),
	}.Normalize()
}

// Right derives the strafe direction from yaw/pitch in degrees.
func Right(yaw, pitch float64) Vector3 {
	return Forward(yaw, pitch).Cross(worldUp).Normalize()
}
