package systems

import (
	"image/color"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var pauseOptions = []string{"Resume", "Main Menu"}

// UpdatePause handles the pause toggle and pause menu navigation.
// Runs AFTER UpdateInput but BEFORE the gameplay systems; pausing is what
// keeps them from running this tick.
func UpdatePause(e *ecs.ECS) {
	session := GetSession(e)
	if session.Mode != cfg.ModePlaying && session.Mode != cfg.ModePaused {
		return
	}

	pause := getOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		if session.Mode == cfg.ModePlaying {
			session.Mode = cfg.ModePaused
			pause.SelectedOption = components.MenuResume
		} else {
			session.Mode = cfg.ModePlaying
			ResetLook(e)
		}
		return
	}

	if session.Mode != cfg.ModePaused {
		return
	}

	numOptions := len(pauseOptions)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			session.Mode = cfg.ModePlaying
			ResetLook(e)
		case components.MenuMain:
			session.Mode = cfg.ModeMenu
		}
	}
}

// DrawPause renders the dimming overlay and the pause menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session.Mode != cfg.ModePaused {
		return
	}
	pause := getOrCreatePause(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFace := fonts.Title.Get()
	drawCentered(screen, "Paused", titleFace, width/2, height/2-80, cfg.White)

	menuFace := fonts.Menu.Get()
	itemStep := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	for i, label := range pauseOptions {
		clr := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = cfg.Pause.TextColorSelected
			label = "> " + label + " <"
		}
		drawCentered(screen, label, menuFace, width/2, height/2+float64(i)*itemStep, clr)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(cx)-w/2, int(y), clr)
}

func getOrCreatePause(e *ecs.ECS) *components.PauseData {
	if entry, ok := components.Pause.First(e.World); ok {
		return components.Pause.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Pause))
	components.Pause.SetValue(entry, components.PauseData{})
	return components.Pause.Get(entry)
}
