package systems

import (
	"fmt"
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

// DrawHUD renders the crosshair, ammo counter, health, score line and the
// kill feed over the 3D scene.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session.Mode != cfg.ModePlaying && session.Mode != cfg.ModePaused {
		return
	}

	drawCrosshair(screen)
	drawAmmo(e, screen)
	drawHealth(session, screen)
	drawScore(session, screen)
	drawKillFeed(e, screen)
}

func drawCrosshair(screen *ebiten.Image) {
	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2
	size := float32(cfg.HUD.CrosshairSize)

	vector.StrokeLine(screen, cx-size, cy, cx+size, cy, 2, cfg.White, false)
	vector.StrokeLine(screen, cx, cy-size, cx, cy+size, 2, cfg.White, false)
}

func drawAmmo(e *ecs.ECS, screen *ebiten.Image) {
	loadout := GetLoadout(e)
	w := loadout.Active()
	weapon := cfg.Weapons[loadout.Current]

	ammoText := fmt.Sprintf("%d / %d", w.Ammo, w.Reserve)
	if w.Reloading > 0 {
		ammoText += " [RELOADING]"
	}

	var clr color.Color = cfg.White
	switch {
	case w.Ammo == 0:
		clr = cfg.Red
	case w.Ammo <= cfg.HUD.AmmoWarning:
		clr = cfg.Yellow
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := cfg.HUD.Margin
	face := fonts.HUD.Get()

	drawRightAligned(screen, weapon.Name, face, width-margin, height-margin-24, cfg.White)
	drawRightAligned(screen, ammoText, face, width-margin, height-margin, clr)
}

func drawHealth(session *components.SessionData, screen *ebiten.Image) {
	height := float64(screen.Bounds().Dy())
	margin := cfg.HUD.Margin
	face := fonts.HUD.Get()

	ratio := 0.0
	if session.MaxHealth > 0 {
		ratio = session.PlayerHealth / session.MaxHealth
	}
	text.Draw(screen,
		fmt.Sprintf("HP: %.0f", session.PlayerHealth),
		face, int(margin), int(height-margin),
		healthBarColor(ratio))
}

func drawScore(session *components.SessionData, screen *ebiten.Image) {
	margin := cfg.HUD.Margin
	face := fonts.HUD.Get()

	text.Draw(screen,
		fmt.Sprintf("Score: %d | Kills: %d", session.Score, session.Kills),
		face, int(margin), int(margin)+16, cfg.White)

	if session.GameMode == cfg.GameModeSurvival {
		text.Draw(screen,
			fmt.Sprintf("Wave: %d", session.Wave),
			face, int(margin), int(margin)+40, cfg.Cyan)
	}
}

func drawKillFeed(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	feed := components.KillFeed.Get(entry)

	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin
	face := fonts.Small.Get()

	// Newest entries first, capped at the display limit.
	shown := 0
	for i := len(feed.Entries) - 1; i >= 0 && shown < cfg.Combat.KillFeedMax; i-- {
		y := margin + 16 + float64(shown)*18
		drawRightAligned(screen, feed.Entries[i].Message, face, width-margin, y, cfg.White)
		shown++
	}
}

func drawRightAligned(screen *ebiten.Image, s string, face font.Face, right, y float64, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(right)-w, int(y), clr)
}
