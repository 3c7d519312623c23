package factory

import (
	"github.com/automoto/deadeye/archetypes"
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the ground-plane collision space. Resolv coordinates
// are world X/Z shifted by GroundHalf so the space origin is the arena's
// south-west corner.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	side := int(cfg.Arena.GroundHalf * 2)
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(side, side, 4, 4))
	return space
}

// CreateArena creates the fixed obstacle blocks as solid resolv objects.
func CreateArena(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, block := range cfg.Arena.Obstacles {
		obstacle := archetypes.Obstacle.Spawn(ecs)
		obj := resolv.NewObject(
			block.X-block.W/2+cfg.Arena.GroundHalf,
			block.Z-block.D/2+cfg.Arena.GroundHalf,
			block.W, block.D,
		)
		obj.AddTags(tags.ResolvSolid)
		obj.Data = obstacle
		space.Add(obj)
		components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	}
}
