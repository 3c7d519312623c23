package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// GameOverScene shows the final score and waits for a key press.
type GameOverScene struct {
	sceneChanger SceneChanger
	score        int
	kills        int
}

// NewGameOverScene creates the end-of-round screen.
func NewGameOverScene(sc SceneChanger, score, kills int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, score: score, kills: kills}
}

func (gs *GameOverScene) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	drawTextCentered(screen, "Game Over", fonts.Title.Get(), width/2, height/2-60, cfg.Red)
	drawTextCentered(screen,
		fmt.Sprintf("Score: %d   Kills: %d", gs.score, gs.kills),
		fonts.Menu.Get(), width/2, height/2, cfg.White)
	drawTextCentered(screen, "Press Enter to return to the menu",
		fonts.Small.Get(), width/2, height/2+50, cfg.Gray)
}

func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(cx)-w/2, int(y), clr)
}
