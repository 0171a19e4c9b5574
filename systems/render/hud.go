package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const fireHint = "Look at a target, click or press F to fire"

// DrawHUD renders score, level, lives and FPS in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry)
	face := fonts.HUD.Get()

	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("FPS: %.1f", s.FPS),
	}
	x := int(cfg.HUD.Margin)
	for i, line := range lines {
		y := int(cfg.HUD.Margin + cfg.HUD.LineHeight*float64(i+1))
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
	}

	small := fonts.HUDSmall.Get()
	text.Draw(screen, fireHint, small, x, screen.Bounds().Dy()-int(cfg.HUD.Margin), fuseYellow)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok || !components.Session.Get(entry).Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	drawCentered(screen, "GAME PAUSED", fonts.HUDTitle.Get(), int(height/2), white)
	drawCentered(screen, "Press SPACE to continue", fonts.HUD.Get(), int(height/2)+60, white)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
