package components

import (
	"math/rand"

	"github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi"
)

// SessionData is the single owner of all round-level state. Every entity
// and all weapon state is mutated through the session's systems; nothing
// else writes gameplay state.
type SessionData struct {
	Mode     config.Mode
	GameMode config.GameMode

	Score int
	Kills int

	// Survival progression
	Wave           int
	EnemiesPerWave int

	PlayerHealth float64
	MaxHealth    float64

	// Seeded source for wander, spread and spawn placement so runs are
	// reproducible under test.
	Rand *rand.Rand
}

var Session = donburi.NewComponentType[SessionData]()
