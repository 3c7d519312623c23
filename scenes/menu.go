package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, cfg.GameModeTarget))
		},
		func() {
			ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, cfg.GameModeSurvival))
		},
		func() {
			os.Exit(0)
		},
	)
}
