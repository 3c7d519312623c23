package components

import (
	"github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       config.EnemyKind
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Wander AI state
	WanderTimer  float64
	WanderTarget *gamemath.Vector3 // nil until the first interval elapses
}

var Enemy = donburi.NewComponentType[EnemyData]()
