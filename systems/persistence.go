package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/gazelaser/components"
	"github.com/automoto/gazelaser/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowDebug  bool `json:"showDebug"`
	Muted      bool `json:"muted"`
}

const settingsKey = "settings"

// AppName is the gdata namespace for saved settings
const AppName = "gazelaser"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return fmt.Errorf("opening save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing is saved
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("Could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("Could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logging.Logger.Warn().Err(err).Msg("Could not save settings")
		return err
	}
	return nil
}

// DecodeSettings parses a saved settings blob
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Logger.Warn().Err(err).Msg("Could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveCurrentSettings saves the toggles held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Fullscreen: s.Fullscreen,
		ShowDebug:  s.ShowDebug,
		Muted:      s.Muted,
	})
}

// SettingsFromSaved turns saved settings into component data, falling back to
// defaults when nothing was saved.
func SettingsFromSaved(saved *SavedSettings, defaults components.SettingsData) components.SettingsData {
	if saved == nil {
		return defaults
	}
	return components.SettingsData{
		Fullscreen: saved.Fullscreen,
		ShowDebug:  saved.ShowDebug,
		Muted:      saved.Muted,
	}
}
