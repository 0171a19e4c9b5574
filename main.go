package main

import (
	"errors"
	"image"
	"os"

	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/fonts"
	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/scenes"
	"github.com/automoto/gazelaser/systems"
	"github.com/automoto/gazelaser/systems/sfx"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(settings components.SettingsData) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewGameScene(g, settings, nil)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Load("."); err != nil {
		l := logging.Setup("info", os.Stderr)
		l.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := logging.Setup(config.Debug.LogLevel, os.Stdout)

	if err := fonts.LoadDefaultFonts(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Gaze Laser")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	settings := components.SettingsData{ShowDebug: config.Debug.ShowGaze, Muted: config.Audio.Muted}
	if err := systems.InitPersistence(); err != nil {
		logger.Warn().Err(err).Msg("Could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings = systems.SettingsFromSaved(saved, settings)
	}
	ebiten.SetFullscreen(settings.Fullscreen)
	sfx.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(settings)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("Game exited with an error")
	}
}
