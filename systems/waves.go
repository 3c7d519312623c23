package systems

import (
	"fmt"
	"math"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWaves repopulates the arena whenever it runs out of enemies.
// Survival mode escalates: each wave adds more enemies of random kinds in
// a ring around the player. Target practice respawns the same fixed
// layout forever.
func UpdateWaves(e *ecs.ECS) {
	if countEnemies(e) > 0 {
		return
	}

	session := GetSession(e)
	switch session.GameMode {
	case cfg.GameModeSurvival:
		spawnWave(e, session)
	default:
		spawnTargets(e)
	}
}

func countEnemies(e *ecs.ECS) int {
	count := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

func spawnWave(e *ecs.ECS, session *components.SessionData) {
	session.Wave++

	// The ring is centered on the arena origin regardless of where the
	// player has wandered.
	for i := 0; i < session.EnemiesPerWave; i++ {
		angle := session.Rand.Float64() * 2 * math.Pi
		radius := cfg.Waves.RingMin + session.Rand.Float64()*(cfg.Waves.RingMax-cfg.Waves.RingMin)
		pos := gamemath.Vector3{
			X: math.Cos(angle) * radius,
			Y: cfg.Waves.SpawnHeight,
			Z: math.Sin(angle) * radius,
		}
		kind := cfg.EnemyKind(session.Rand.Intn(int(cfg.EnemyKindCount)))
		factory.CreateEnemy(e, pos, kind)
	}

	session.EnemiesPerWave += cfg.Waves.Increment
	AddKillFeed(e, fmt.Sprintf("Wave %d Starting!", session.Wave))
}

func spawnTargets(e *ecs.ECS) {
	for _, p := range cfg.Arena.TargetPositions {
		pos := gamemath.Vector3{X: p[0], Y: p[1], Z: p[2]}
		factory.CreateEnemy(e, pos, cfg.EnemyNormal)
	}
}
