package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates debris motion under gravity and removes
// expired particles. Particles fall through the ground; they fade out
// before it shows.
func UpdateParticles(e *ecs.ECS) {
	dt := GetDT(e)

	var expired []*donburi.Entry
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		transform := components.Transform.Get(entry)

		transform.Position = transform.Position.Add(particle.Velocity.Scale(dt))
		particle.Velocity.Y -= cfg.Particles.Gravity * dt

		particle.Life -= dt
		if particle.Life <= 0 {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		entry.Remove()
	}
}
