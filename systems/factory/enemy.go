package factory

import (
	"github.com/automoto/deadeye/archetypes"
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind at full health.
func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vector3, kind cfg.EnemyKind) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[kind]
	if !exists {
		kind = cfg.EnemyNormal
		enemyType = cfg.Enemy.Types[kind]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       kind,
		TypeConfig: &enemyType,

		// No target until the first full interval elapses; fresh enemies
		// stand still.
		WanderTimer: cfg.Enemy.WanderInterval,
	})
	components.Transform.SetValue(enemy, components.TransformData{Position: pos})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	return enemy
}
