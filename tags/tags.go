package tags

import "github.com/yohamta/donburi"

var (
	Enemy    = donburi.NewTag().SetName("Enemy")
	Particle = donburi.NewTag().SetName("Particle")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for ground-plane collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
)
