package archetypes

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
		components.Loadout,
		components.KillFeed,
		components.ScreenShake,
	)
	Camera = newArchetype(
		components.Camera,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Health,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Transform,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
