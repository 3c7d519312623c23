package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/systems"
	"github.com/automoto/deadeye/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one round of the game in the selected mode.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	gameMode     cfg.GameMode
	once         sync.Once
}

// NewArenaScene creates an arena scene for the given mode.
func NewArenaScene(sc SceneChanger, gameMode cfg.GameMode) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, gameMode: gameMode}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	session := systems.GetSession(as.ecs)
	switch session.Mode {
	case cfg.ModePlaying:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	case cfg.ModePaused:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case cfg.ModeMenu:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	case cfg.ModeOver:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		as.sceneChanger.ChangeScene(NewGameOverScene(as.sceneChanger, session.Score, session.Kills))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems that stop while paused
	e.AddSystem(systems.WithGameplayChecks(
		systems.UpdatePlayer,
		systems.UpdateWeaponIntents,
		systems.UpdateWeapons,
		systems.UpdateEnemies,
		systems.UpdateParticles,
		systems.UpdateKillFeed,
		systems.UpdateEffects,
		systems.UpdateWaves,
	))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateClock(e, 1.0/float64(ebiten.TPS()))
	factory.CreateSession(e, time.Now().UnixNano())
	factory.CreateSpace(e)
	factory.CreateArena(e)
	factory.CreateCamera(e)

	as.ecs = e
	systems.StartSession(e, as.gameMode)
}
