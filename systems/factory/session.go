package factory

import (
	"math/rand"

	"github.com/automoto/deadeye/archetypes"
	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/automoto/deadeye/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the fixed-step clock singleton.
func CreateClock(ecs *ecs.ECS, dt float64) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(cfg.Default, components.Clock))
	components.Clock.SetValue(e, components.ClockData{DT: dt})
	return e
}

// CreateSession creates the session singleton with a seeded random source.
// The session starts in menu mode; StartSession puts it in play.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Mode:           cfg.ModeMenu,
		Score:          0,
		Kills:          0,
		Wave:           0,
		EnemiesPerWave: cfg.Waves.InitialEnemies,
		PlayerHealth:   cfg.Player.Health,
		MaxHealth:      cfg.Player.Health,
		Rand:           rand.New(rand.NewSource(seed)),
	})
	components.Loadout.SetValue(session, NewLoadout())
	components.KillFeed.SetValue(session, components.KillFeedData{})
	components.ScreenShake.SetValue(session, components.ScreenShakeData{})

	return session
}

// NewLoadout returns every weapon at its starting ammo and reserve.
func NewLoadout() components.LoadoutData {
	var loadout components.LoadoutData
	loadout.Current = cfg.WeaponPistol
	for id := cfg.WeaponID(0); id < cfg.WeaponCount; id++ {
		w := cfg.Weapons[id]
		loadout.Weapons[id] = components.WeaponStateData{
			Ammo:    w.MaxAmmo,
			Reserve: w.StartReserve,
		}
	}
	return loadout
}

// CreateCamera creates the first-person camera at the spawn pose, with a
// resolv body on the ground plane so obstacles block the player.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	components.Camera.SetValue(camera, components.CameraData{
		Position: gamemath.Vector3{
			X: cfg.Player.SpawnX,
			Y: cfg.Player.SpawnY,
			Z: cfg.Player.SpawnZ,
		},
	})

	body := cfg.Player.BodySize
	obj := resolv.NewObject(
		cfg.Player.SpawnX-body/2+cfg.Arena.GroundHalf,
		cfg.Player.SpawnZ-body/2+cfg.Arena.GroundHalf,
		body, body,
	)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = camera
	components.Object.SetValue(camera, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return camera
}
