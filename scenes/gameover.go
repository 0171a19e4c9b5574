package scenes

import (
	"github.com/automoto/gazelaser/input"
	"github.com/automoto/gazelaser/logging"
	"github.com/automoto/gazelaser/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// GameOverScene shows the final score over the frozen playfield
type GameOverScene struct {
	sceneChanger SceneChanger
	game         *GameScene
	gameOverUI   *ui.GameOverUI
	input        input.State
	logger       zerolog.Logger

	shouldRestart bool
	shouldQuit    bool
}

// NewGameOverScene creates a game over scene for the finished game
func NewGameOverScene(sc SceneChanger, game *GameScene) *GameOverScene {
	gs := &GameOverScene{
		sceneChanger: sc,
		game:         game,
		logger:       logging.Component("gameover"),
	}

	state := game.Session().State()
	gs.logger.Info().Int("score", state.Score).Int("level", state.Level).Msg("Game over")

	gameOverUI, err := ui.NewGameOverUI(
		func() { gs.shouldRestart = true },
		func() { gs.shouldQuit = true },
	)
	if err != nil {
		// Space and Esc still restart and quit
		gs.logger.Warn().Err(err).Msg("Could not build game over panel")
	} else {
		gameOverUI.SetResult(state.Score, state.Level)
		gs.gameOverUI = gameOverUI
	}

	// Space is still held from the last frame of play
	gs.input.Poll()
	return gs
}

func (gs *GameOverScene) Update() {
	gs.input.Poll()
	if gs.gameOverUI != nil {
		gs.gameOverUI.Update()
	}

	if gs.input.JustPressed(input.ActionPause) {
		gs.shouldRestart = true
	}
	if gs.input.JustPressed(input.ActionQuit) {
		gs.shouldQuit = true
	}

	if gs.shouldQuit {
		gs.sceneChanger.Quit()
		return
	}
	if gs.shouldRestart {
		gs.game.Restart()
		gs.sceneChanger.ChangeScene(gs.game)
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	gs.game.Draw(screen)
	if gs.gameOverUI != nil {
		gs.gameOverUI.UI.Draw(screen)
	}
}
