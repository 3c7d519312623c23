package systems

import (
	"math"
	"testing"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// newTestECS builds a headless world with the full arena wiring and the
// session already playing in the given mode.
func newTestECS(t *testing.T, gameMode cfg.GameMode) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, testDT)
	factory.CreateSession(e, 1)
	factory.CreateSpace(e)
	factory.CreateArena(e)
	factory.CreateCamera(e)
	StartSession(e, gameMode)
	return e
}

// tick runs the given systems in order for n steps.
func tick(e *ecs.ECS, n int, systems ...func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		for _, system := range systems {
			system(e)
		}
	}
}

// ticksFor returns enough steps to cover the given duration in seconds.
func ticksFor(seconds float64) int {
	return int(math.Ceil(seconds/testDT)) + 1
}

func countParticles(e *ecs.ECS) int {
	count := 0
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	return count
}

func removeEnemies(e *ecs.ECS) {
	removeAllEnemies(e)
}
