package systems

import (
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton. Panics if the scene never
// created one; that is a wiring bug, not a runtime condition.
func GetSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		panic("session entity not created")
	}
	return components.Session.Get(entry)
}

// GetLoadout returns the weapon loadout stored on the session entity.
func GetLoadout(ecs *ecs.ECS) *components.LoadoutData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		panic("session entity not created")
	}
	return components.Loadout.Get(entry)
}

// GetDT returns the current fixed simulation step in seconds.
func GetDT(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}

// StartSession resets all round state and puts the session into play.
// Existing enemies and particles are destroyed; the camera returns to the
// spawn pose; the loadout returns to starting ammo. Enemy spawning is left
// to UpdateWaves, which fires on the first tick because the arena is empty.
func StartSession(e *ecs.ECS, gameMode cfg.GameMode) {
	session := GetSession(e)
	session.Mode = cfg.ModePlaying
	session.GameMode = gameMode
	session.Score = 0
	session.Kills = 0
	session.Wave = 0
	session.EnemiesPerWave = cfg.Waves.InitialEnemies
	session.PlayerHealth = cfg.Player.Health
	session.MaxHealth = cfg.Player.Health

	if entry, ok := components.Session.First(e.World); ok {
		components.Loadout.SetValue(entry, factory.NewLoadout())
		components.KillFeed.SetValue(entry, components.KillFeedData{})
		components.ScreenShake.SetValue(entry, components.ScreenShakeData{})
	}

	removeAllEnemies(e)
	removeAllParticles(e)
	resetCamera(e)
	ResetLook(e)
}

// WithGameplayChecks wraps simulation systems so they only run while the
// session is actively playing.
func WithGameplayChecks(systems ...func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetSession(e).Mode != cfg.ModePlaying {
			return
		}
		for _, system := range systems {
			system(e)
		}
	}
}

func removeAllEnemies(e *ecs.ECS) {
	removeTagged(e, func(fn func(*donburi.Entry)) {
		components.Enemy.Each(e.World, fn)
	})
}

func removeAllParticles(e *ecs.ECS) {
	removeTagged(e, func(fn func(*donburi.Entry)) {
		components.Particle.Each(e.World, fn)
	})
}

func removeTagged(e *ecs.ECS, each func(func(*donburi.Entry))) {
	var doomed []*donburi.Entry
	each(func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		entry.Remove()
	}
}

func resetCamera(e *ecs.ECS) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	components.Camera.SetValue(entry, components.CameraData{
		Position: gamemath.Vector3{
			X: cfg.Player.SpawnX,
			Y: cfg.Player.SpawnY,
			Z: cfg.Player.SpawnZ,
		},
	})

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		body := cfg.Player.BodySize
		obj.X = cfg.Player.SpawnX - body/2 + cfg.Arena.GroundHalf
		obj.Y = cfg.Player.SpawnZ - body/2 + cfg.Arena.GroundHalf
		obj.Update()
	}
}
