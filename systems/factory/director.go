package factory

import (
	"github.com/automoto/gazelaser/archetypes"
	"github.com/automoto/gazelaser/components"
	cfg "github.com/automoto/gazelaser/config"
	"github.com/yohamta/donburi"
)

// CreateDirector spawns the singleton holding pacing, gaze and trigger state
func CreateDirector(w donburi.World) *donburi.Entry {
	director := archetypes.Director.Spawn(w)
	components.Pacing.SetValue(director, NewPacing())
	components.Gaze.SetValue(director, components.GazeData{})
	components.Firing.SetValue(director, components.FiringData{})
	return director
}

// NewPacing returns the pacing state at the start of a game
func NewPacing() components.PacingData {
	return components.PacingData{
		SpawnInterval:   cfg.Pacing.InitialSpawnInterval,
		BombProbability: cfg.Pacing.InitialBombProbability,
	}
}

// CreateSession spawns the singleton holding score, level and lives
func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, NewSession())
	return session
}

// NewSession returns the session state at the start of a game
func NewSession() components.SessionData {
	return components.SessionData{
		Level: 1,
		Lives: cfg.Player.StartingLives,
	}
}

// CreateSettings spawns the singleton holding host toggles
func CreateSettings(w donburi.World, s components.SettingsData) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, s)
	return settings
}
