package factory

import (
	"math/rand"

	"github.com/automoto/deadeye/archetypes"
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDeathBurst creates the debris burst at an enemy's death position.
func SpawnDeathBurst(ecs *ecs.ECS, pos gamemath.Vector3, rng *rand.Rand) {
	p := cfg.Particles
	for i := 0; i < p.BurstCount; i++ {
		spawnParticle(ecs, pos, rng)
	}
}

func spawnParticle(ecs *ecs.ECS, pos gamemath.Vector3, rng *rand.Rand) *donburi.Entry {
	p := cfg.Particles

	velocity := gamemath.Vector3{
		X: uniform(rng, -p.HorizontalMax, p.HorizontalMax),
		Y: uniform(rng, 0, p.VerticalMax),
		Z: uniform(rng, -p.HorizontalMax, p.HorizontalMax),
	}
	life := uniform(rng, p.LifeMin, p.LifeMax)

	particle := archetypes.Particle.Spawn(ecs)
	components.Transform.SetValue(particle, components.TransformData{Position: pos})
	components.Particle.SetValue(particle, components.ParticleData{
		Velocity: velocity,
		Color:    p.Colors[rng.Intn(len(p.Colors))],
		Life:     life,
		MaxLife:  life,
	})
	return particle
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
