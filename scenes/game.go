package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/automoto/gazelaser/core"
	"github.com/automoto/gazelaser/input"
	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/sensor"
	"github.com/automoto/gazelaser/systems"
	"github.com/automoto/gazelaser/systems/factory"
	"github.com/automoto/gazelaser/systems/render"
	"github.com/automoto/gazelaser/systems/sfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the playfield: it feeds sensor readings into the session every
// frame and draws the result.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *core.Session
	input        *input.State
	source       sensor.Source
	settings     components.SettingsData
	logger       zerolog.Logger
	once         sync.Once

	// Game clock, frozen while paused
	now        time.Duration
	lastUpdate time.Time
}

// NewGameScene creates the playfield. source may be nil to use the mouse.
func NewGameScene(sc SceneChanger, settings components.SettingsData, source sensor.Source) *GameScene {
	return &GameScene{
		sceneChanger: sc,
		settings:     settings,
		source:       source,
		logger:       logging.Component("game"),
	}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if gs.session.State().GameOver {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	world := donburi.NewWorld()
	gs.ecs = ecs.NewECS(world)

	gs.session = core.NewSession(core.NewSimulation(core.WithWorld(world)))
	factory.CreateSettings(world, gs.settings)

	gs.input = &input.State{}
	if gs.source == nil {
		gs.source = input.NewMouseSensor(gs.input)
	}
	gs.lastUpdate = time.Now()

	// Input first, then the session step
	gs.ecs.AddSystem(gs.updateInput)
	gs.ecs.AddSystem(gs.updateSession)
	gs.ecs.AddSystem(updateScreenShake)
	gs.ecs.AddSystem(sfx.UpdateAudio)

	// Renderers
	gs.ecs.AddRenderer(layerDefault, render.DrawExplosions)
	gs.ecs.AddRenderer(layerDefault, render.DrawTargets)
	gs.ecs.AddRenderer(layerDefault, render.DrawBeams)
	gs.ecs.AddRenderer(layerDefault, render.DrawGazeDebug)
	gs.ecs.AddRenderer(layerDefault, render.DrawHUD)
	gs.ecs.AddRenderer(layerDefault, render.DrawPause)

	gs.logger.Info().Int("width", cfg.C.Width).Int("height", cfg.C.Height).Msg("Game started")
}

// updateInput handles the host keys: pause, quit and the persisted toggles.
func (gs *GameScene) updateInput(e *ecs.ECS) {
	gs.input.Poll()

	if gs.input.JustPressed(input.ActionQuit) {
		gs.logger.Info().Int("score", gs.session.State().Score).Msg("Quit")
		gs.sceneChanger.Quit()
		return
	}
	if gs.input.JustPressed(input.ActionPause) {
		gs.session.TogglePause()
	}

	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	changed := false
	if gs.input.JustPressed(input.ActionFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if gs.input.JustPressed(input.ActionDebug) {
		settings.ShowDebug = !settings.ShowDebug
		changed = true
	}
	if gs.input.JustPressed(input.ActionMute) {
		settings.Muted = !settings.Muted
		gs.logger.Debug().Bool("muted", settings.Muted).Msg("Sound toggled")
		changed = true
	}
	if changed {
		gs.settings = *settings
		systems.SaveCurrentSettings(settings)
	}
}

func (gs *GameScene) updateSession(e *ecs.ECS) {
	t := time.Now()
	dt := t.Sub(gs.lastUpdate)
	gs.lastUpdate = t
	if !gs.session.State().Paused {
		gs.now += dt
	}

	res := gs.session.Step(gs.now, gs.source.Read(gs.now))
	if res.Skipped {
		return
	}
	systems.QueueSFX(e.World, res.Sounds()...)

	if res.LifeLost {
		systems.TriggerScreenShake(e.World, cfg.ScreenShake.LifeLostIntensity, cfg.ScreenShake.LifeLostDuration)
	}
	for _, hit := range res.Hits {
		if hit.Bomb {
			systems.TriggerScreenShake(e.World, cfg.ScreenShake.BombHitIntensity, cfg.ScreenShake.BombHitDuration)
		}
	}
}

func updateScreenShake(e *ecs.ECS) {
	systems.UpdateScreenShake(e.World)
}

// Restart starts a new game in this scene
func (gs *GameScene) Restart() {
	gs.session.Restart()
	gs.lastUpdate = time.Now()
}

// Session returns the session driven by this scene
func (gs *GameScene) Session() *core.Session {
	return gs.session
}
