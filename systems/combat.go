package systems

import (
	"fmt"

	"github.com/automoto/deadeye/components"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Raycast finds the living enemy closest to the ray origin whose bounding
// sphere the ray passes through. Dead enemies are transparent to rays.
func Raycast(e *ecs.ECS, origin, dir gamemath.Vector3) (*donburi.Entry, bool) {
	var closest *donburi.Entry
	closestDist := 0.0

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		health := components.Health.Get(entry)
		if !health.Alive() {
			return
		}
		enemy := components.Enemy.Get(entry)
		pos := components.Transform.Get(entry).Position

		dist, hit := gamemath.RayTest(origin, dir, pos, enemy.TypeConfig.Size)
		if !hit {
			return
		}
		if closest == nil || dist < closestDist {
			closest = entry
			closestDist = dist
		}
	})

	return closest, closest != nil
}

// ApplyHit deals damage to an enemy and, on a kill, settles all the
// bookkeeping in one place: score, kill count, kill feed, death burst and
// entity removal.
func ApplyHit(e *ecs.ECS, entry *donburi.Entry, damage float64) {
	health := components.Health.Get(entry)
	if !health.Alive() {
		return
	}
	health.Current -= damage
	if health.Alive() {
		return
	}

	enemy := components.Enemy.Get(entry)
	pos := components.Transform.Get(entry).Position
	session := GetSession(e)

	session.Score += enemy.TypeConfig.Score
	session.Kills++
	AddKillFeed(e, fmt.Sprintf("Eliminated %s Enemy", enemy.TypeConfig.Name))
	factory.SpawnDeathBurst(e, pos, session.Rand)

	entry.Remove()
}
