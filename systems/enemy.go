package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies drives the wander AI. Every couple of seconds an enemy
// picks a fresh target near the player and walks toward it on the ground
// plane. Enemies never climb and never collide with obstacles or each
// other; they exist to be shot at.
func UpdateEnemies(e *ecs.ECS) {
	dt := GetDT(e)
	session := GetSession(e)

	playerPos := gamemath.Vector3{}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		playerPos = components.Camera.Get(cameraEntry).Position
	}

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		transform := components.Transform.Get(entry)

		enemy.WanderTimer -= dt
		if enemy.WanderTimer <= 0 {
			target := pickWanderTarget(session, playerPos, transform.Position.Y)
			enemy.WanderTarget = &target
			enemy.WanderTimer = cfg.Enemy.WanderInterval
		}
		if enemy.WanderTarget == nil {
			return
		}

		toTarget := enemy.WanderTarget.Sub(transform.Position).Horizontal()
		if toTarget.Length() <= cfg.Enemy.ArriveDistance {
			return
		}
		step := toTarget.Normalize().Scale(enemy.TypeConfig.Speed * dt)
		transform.Position = transform.Position.Add(step)
	})
}

func pickWanderTarget(session *components.SessionData, playerPos gamemath.Vector3, y float64) gamemath.Vector3 {
	r := cfg.Enemy.WanderRange
	return gamemath.Vector3{
		X: playerPos.X + (session.Rand.Float64()*2-1)*r,
		Y: y,
		Z: playerPos.Z + (session.Rand.Float64()*2-1)*r,
	}
}
