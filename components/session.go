package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SessionData is the player's run: score, level and lives.
type SessionData struct {
	Score    int
	Level    int
	Lives    int
	FPS      float64
	Paused   bool
	GameOver bool

	LastLifeLost time.Duration
	HasLostLife  bool
}

var Session = donburi.NewComponentType[SessionData]()
